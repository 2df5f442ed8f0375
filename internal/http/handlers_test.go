package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"saga/docs"
	"saga/internal/saga"
)

func setupServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServer(saga.NewInMemory(), log, Options{AllowOrigins: []string{"*"}})
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var out map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return out
}

func expect(t *testing.T, w *httptest.ResponseRecorder, code int, key, want string) {
	t.Helper()
	if w.Code != code {
		t.Fatalf("expected %d, got %d: %s", code, w.Code, w.Body.String())
	}
	if got := decode(t, w)[key]; got != want {
		t.Fatalf("%s: got %q, want %q", key, got, want)
	}
}

func seed(t *testing.T, s *Server) {
	t.Helper()
	w := doJSON(t, s, http.MethodPost, "/api/v1/clientes", map[string]any{
		"cpf": "12345678901", "nome": "Sandra", "email": "sandra@x.com", "localizacao": "LSD",
	})
	expect(t, w, http.StatusCreated, "resultado", "12345678901")

	w = doJSON(t, s, http.MethodPost, "/api/v1/fornecedores", map[string]any{
		"nome": "Osvaldo", "email": "osvaldo@x.com", "telefone": "83",
	})
	expect(t, w, http.StatusCreated, "resultado", "Osvaldo")

	w = doJSON(t, s, http.MethodPost, "/api/v1/fornecedores/Osvaldo/produtos", map[string]any{
		"nome": "Caderno", "descricao": "Ed. limitada", "preco": 25.5,
	})
	expect(t, w, http.StatusCreated, "resultado", "Caderno - Ed. limitada - R$25,50")
}

func productPath(supplier, name, desc string) string {
	return "/api/v1/fornecedores/" + url.PathEscape(supplier) + "/produtos/" + url.PathEscape(name) + "/" + url.PathEscape(desc)
}

func TestCustomerFlow(t *testing.T) {
	s := setupServer(t)
	seed(t, s)

	w := doJSON(t, s, http.MethodGet, "/api/v1/clientes/12345678901", nil)
	expect(t, w, http.StatusOK, "resultado", "Sandra - LSD - sandra@x.com")

	w = doJSON(t, s, http.MethodPatch, "/api/v1/clientes/12345678901", map[string]any{"atributo": "localizacao", "novoValor": "SPG"})
	expect(t, w, http.StatusOK, "resultado", "Localizacao")

	w = doJSON(t, s, http.MethodGet, "/api/v1/clientes", nil)
	expect(t, w, http.StatusOK, "resultado", "Sandra - SPG - sandra@x.com")

	w = doJSON(t, s, http.MethodPost, "/api/v1/clientes", map[string]any{
		"cpf": "12345678901", "nome": "X", "email": "x", "localizacao": "y",
	})
	expect(t, w, http.StatusConflict, "erro", "Erro no cadastro do cliente: cliente ja existe.")

	w = doJSON(t, s, http.MethodDelete, "/api/v1/clientes/12345678901", nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete code %v", w.Code)
	}
	w = doJSON(t, s, http.MethodGet, "/api/v1/clientes/12345678901", nil)
	expect(t, w, http.StatusNotFound, "erro", "Erro na exibicao do cliente: cliente nao existe.")
}

func TestProductFlow(t *testing.T) {
	s := setupServer(t)
	seed(t, s)

	w := doJSON(t, s, http.MethodGet, productPath("Osvaldo", "Caderno", "Ed. limitada"), nil)
	expect(t, w, http.StatusOK, "resultado", "Caderno - Ed. limitada - R$25,50")

	w = doJSON(t, s, http.MethodPut, productPath("Osvaldo", "Caderno", "Ed. limitada"), map[string]any{"preco": 30})
	expect(t, w, http.StatusOK, "resultado", "Caderno - Ed. limitada - R$30,00")

	w = doJSON(t, s, http.MethodPost, "/api/v1/fornecedores/Osvaldo/produtos", map[string]any{
		"nome": "Refri", "descricao": "Lata", "preco": 2,
	})
	expect(t, w, http.StatusCreated, "resultado", "Refri - Lata - R$2,00")

	w = doJSON(t, s, http.MethodPost, "/api/v1/fornecedores/Osvaldo/combos", map[string]any{
		"nome": "Kit", "descricao": "Escolar", "fator": 0.5, "produtos": "Caderno - Ed. limitada, Refri - Lata",
	})
	expect(t, w, http.StatusCreated, "resultado", "Kit - Escolar - R$16,00")

	w = doJSON(t, s, http.MethodPut, "/api/v1/fornecedores/Osvaldo/combos/Kit/Escolar", map[string]any{"fator": 0.25})
	expect(t, w, http.StatusOK, "resultado", "Kit - Escolar - R$24,00")

	w = doJSON(t, s, http.MethodGet, "/api/v1/fornecedores/Osvaldo/produtos", nil)
	expect(t, w, http.StatusOK, "resultado",
		"Osvaldo - Caderno - Ed. limitada - R$30,00 | Osvaldo - Kit - Escolar - R$24,00 | Osvaldo - Refri - Lata - R$2,00")

	w = doJSON(t, s, http.MethodDelete, productPath("Osvaldo", "Refri", "Lata"), nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete code %v", w.Code)
	}

	w = doJSON(t, s, http.MethodGet, "/api/v1/produtos", nil)
	expect(t, w, http.StatusOK, "resultado", "Osvaldo - Caderno - Ed. limitada - R$30,00 | Osvaldo - Kit - Escolar - R$24,00")
}

func TestAccountFlow(t *testing.T) {
	s := setupServer(t)
	seed(t, s)

	w := doJSON(t, s, http.MethodPost, "/api/v1/compras", map[string]any{
		"cpf": "12345678901", "fornecedor": "Osvaldo", "data": "10/05/2020", "produto": "Caderno", "descricao": "Ed. limitada",
	})
	expect(t, w, http.StatusCreated, "resultado", "25.50")

	w = doJSON(t, s, http.MethodGet, "/api/v1/clientes/12345678901/contas/Osvaldo/debito", nil)
	expect(t, w, http.StatusOK, "resultado", "25.50")

	w = doJSON(t, s, http.MethodGet, "/api/v1/clientes/12345678901/contas/Osvaldo", nil)
	expect(t, w, http.StatusOK, "resultado", "Cliente: Sandra | Osvaldo | Caderno - 10-05-2020")

	w = doJSON(t, s, http.MethodGet, "/api/v1/clientes/12345678901/contas", nil)
	expect(t, w, http.StatusOK, "resultado", "Cliente: Sandra | Osvaldo | Caderno - 10-05-2020")

	w = doJSON(t, s, http.MethodGet, "/api/v1/compras", nil)
	expect(t, w, http.StatusConflict, "erro", "Erro na listagem de compras: criterio ainda nao selecionado.")

	w = doJSON(t, s, http.MethodPut, "/api/v1/compras/criterio", map[string]any{"criterio": "Fornecedor"})
	expect(t, w, http.StatusOK, "resultado", "Fornecedor")

	w = doJSON(t, s, http.MethodGet, "/api/v1/compras", nil)
	expect(t, w, http.StatusOK, "resultado", "Osvaldo, Sandra, Ed. limitada, 10/05/2020")

	w = doJSON(t, s, http.MethodPost, "/api/v1/clientes/12345678901/contas/Osvaldo/pagamento", nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("pay code %v", w.Code)
	}

	w = doJSON(t, s, http.MethodGet, "/api/v1/clientes/12345678901/contas/Osvaldo/debito", nil)
	expect(t, w, http.StatusNotFound, "erro", "Erro ao recuperar debito: cliente nao tem debito com fornecedor.")
}

func TestCreatePurchase_ZeroSumAccount(t *testing.T) {
	s := setupServer(t)
	seed(t, s)

	w := doJSON(t, s, http.MethodPost, "/api/v1/fornecedores/Osvaldo/produtos", map[string]any{
		"nome": "A", "descricao": "a", "preco": 1,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("product code %v: %s", w.Code, w.Body.String())
	}
	w = doJSON(t, s, http.MethodPost, "/api/v1/fornecedores/Osvaldo/combos", map[string]any{
		"nome": "Dobro", "descricao": "de A", "fator": 2, "produtos": "A - a",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("combo code %v: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, s, http.MethodPost, "/api/v1/compras", map[string]any{
		"cpf": "12345678901", "fornecedor": "Osvaldo", "data": "10/05/2020", "produto": "A", "descricao": "a",
	})
	expect(t, w, http.StatusCreated, "resultado", "1.00")

	w = doJSON(t, s, http.MethodPost, "/api/v1/compras", map[string]any{
		"cpf": "12345678901", "fornecedor": "Osvaldo", "data": "10/05/2020", "produto": "Dobro", "descricao": "de A",
	})
	expect(t, w, http.StatusCreated, "resultado", "0.00")

	w = doJSON(t, s, http.MethodGet, "/api/v1/clientes/12345678901/contas/Osvaldo", nil)
	expect(t, w, http.StatusOK, "resultado", "Cliente: Sandra | Osvaldo | A - 10-05-2020 | Dobro - 10-05-2020")
}

func TestHTTP_BadRequests(t *testing.T) {
	s := setupServer(t)
	seed(t, s)

	// empty body
	w := doJSON(t, s, http.MethodPost, "/api/v1/clientes", map[string]any{"nome": ""})
	expect(t, w, http.StatusBadRequest, "erro", "Erro no cadastro do cliente: cpf nao pode ser vazio ou nulo.")

	// malformed json
	req := httptest.NewRequest(http.MethodPost, "/api/v1/fornecedores", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Engine().ServeHTTP(rec, req)
	expect(t, rec, http.StatusBadRequest, "erro", "json invalido")

	w = doJSON(t, s, http.MethodPost, "/api/v1/compras", map[string]any{
		"cpf": "12345678901", "fornecedor": "Osvaldo", "data": "10/13/2020", "produto": "Caderno", "descricao": "Ed. limitada",
	})
	expect(t, w, http.StatusBadRequest, "erro", "Erro ao cadastrar compra: data invalida.")

	w = doJSON(t, s, http.MethodPut, "/api/v1/compras/criterio", map[string]any{"criterio": "Preco"})
	expect(t, w, http.StatusBadRequest, "erro", "Erro na listagem de compras: criterio nao oferecido pelo sistema.")

	w = doJSON(t, s, http.MethodPatch, "/api/v1/fornecedores/Osvaldo", map[string]any{"atributo": "nome", "novoValor": "Outro"})
	expect(t, w, http.StatusBadRequest, "erro", "Erro na edicao do fornecedor: nome nao pode ser editado.")
}

func TestRequestIDAndHealth(t *testing.T) {
	s := setupServer(t)

	w := doJSON(t, s, http.MethodGet, "/health", nil)
	expect(t, w, http.StatusOK, "status", "ok")
	if w.Header().Get(requestIDHeader) == "" {
		t.Fatalf("missing %s header", requestIDHeader)
	}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	s.Engine().ServeHTTP(rec, req)
	if got := rec.Header().Get(requestIDHeader); got != "abc-123" {
		t.Fatalf("request id not propagated: %q", got)
	}
}

func TestSwaggerRouteOptional(t *testing.T) {
	s := setupServer(t)
	w := doJSON(t, s, http.MethodGet, "/swagger/index.html", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("swagger should be disabled, got %d", w.Code)
	}
}

func TestSwaggerDocumentsServedRoutes(t *testing.T) {
	s := setupServer(t)
	served := make(map[string]bool)
	for _, r := range s.Engine().Routes() {
		served[r.Method+" "+r.Path] = true
	}

	var doc struct {
		BasePath string                    `json:"basePath"`
		Paths    map[string]map[string]any `json:"paths"`
	}
	if err := json.Unmarshal([]byte(docs.SwaggerInfo.ReadDoc()), &doc); err != nil {
		t.Fatalf("swagger doc: %v", err)
	}
	if _, ok := doc.Paths["/health"]; ok {
		t.Fatalf("/health is not served under %s", doc.BasePath)
	}

	param := regexp.MustCompile(`\{(\w+)\}`)
	for path, ops := range doc.Paths {
		for method := range ops {
			route := strings.ToUpper(method) + " " + doc.BasePath + param.ReplaceAllString(path, ":$1")
			if !served[route] {
				t.Errorf("documented route not served: %s", route)
			}
		}
	}
}
