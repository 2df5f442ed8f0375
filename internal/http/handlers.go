package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"saga/internal/domain"
	"saga/internal/saga"
)

// Options are transport settings taken from config
type Options struct {
	AllowOrigins []string
	Swagger      bool
}

type Server struct {
	engine *gin.Engine
	saga   *saga.Saga
}

func NewServer(app *saga.Saga, log *slog.Logger, opts Options) *Server {
	r := gin.New()
	r.Use(gin.Recovery(), requestID(log), accessLog())
	if len(opts.AllowOrigins) > 0 {
		r.Use(cors.New(corsConfig(opts.AllowOrigins)))
	}
	s := &Server{engine: r, saga: app}
	s.registerRoutes(opts)
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders:  []string{"Origin", "Content-Type", requestIDHeader},
		ExposeHeaders: []string{requestIDHeader},
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	return cfg
}

func (s *Server) registerRoutes(opts Options) {
	if opts.Swagger {
		s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	s.engine.GET("/health", s.health)

	v1 := s.engine.Group("/api/v1")
	{
		customers := v1.Group("/clientes")
		customers.POST("", s.createCustomer)
		customers.GET("", s.listCustomers)
		customers.GET(":cpf", s.getCustomer)
		customers.PATCH(":cpf", s.editCustomer)
		customers.DELETE(":cpf", s.deleteCustomer)
		customers.GET(":cpf/contas", s.getAccounts)
		customers.GET(":cpf/contas/:fornecedor", s.getAccount)
		customers.GET(":cpf/contas/:fornecedor/debito", s.getDebit)
		customers.POST(":cpf/contas/:fornecedor/pagamento", s.pay)

		suppliers := v1.Group("/fornecedores")
		suppliers.POST("", s.createSupplier)
		suppliers.GET("", s.listSuppliers)
		suppliers.GET(":nome", s.getSupplier)
		suppliers.PATCH(":nome", s.editSupplier)
		suppliers.DELETE(":nome", s.deleteSupplier)
		suppliers.POST(":nome/produtos", s.createProduct)
		suppliers.GET(":nome/produtos", s.listProducts)
		suppliers.GET(":nome/produtos/:produto/:descricao", s.getProduct)
		suppliers.PUT(":nome/produtos/:produto/:descricao", s.updateProduct)
		suppliers.DELETE(":nome/produtos/:produto/:descricao", s.deleteProduct)
		suppliers.POST(":nome/combos", s.createCombo)
		suppliers.PUT(":nome/combos/:produto/:descricao", s.updateCombo)

		v1.GET("/produtos", s.listAllProducts)

		purchases := v1.Group("/compras")
		purchases.POST("", s.createPurchase)
		purchases.GET("", s.listPurchases)
		purchases.PUT("criterio", s.selectCriterion)
	}
}

type resultResp struct {
	Resultado string `json:"resultado"`
}

type errorResp struct {
	Erro string `json:"erro"`
}

func respond(c *gin.Context, status int, result string, err error) {
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(status, resultResp{Resultado: result})
}

func fail(c *gin.Context, err error) {
	status := mapErrorToStatus(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(status, errorResp{Erro: err.Error()})
}

func badJSON(c *gin.Context) {
	c.JSON(http.StatusBadRequest, errorResp{Erro: "json invalido"})
}

func mapErrorToStatus(err error) int {
	kind, ok := domain.KindOf(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch kind {
	case domain.KindInvalid:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict, domain.KindState:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// health is served outside /api/v1 and left out of the swagger document.
func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Customers

type createCustomerReq struct {
	CPF         string `json:"cpf"`
	Nome        string `json:"nome"`
	Email       string `json:"email"`
	Localizacao string `json:"localizacao"`
}

// @Summary Cadastra cliente
// @Tags clientes
// @Accept json
// @Produce json
// @Param input body createCustomerReq true "Cliente"
// @Success 201 {object} resultResp
// @Failure 400 {object} errorResp
// @Failure 409 {object} errorResp
// @Router /clientes [post]
func (s *Server) createCustomer(c *gin.Context) {
	var req createCustomerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	cpf, err := s.saga.AddCustomer(c.Request.Context(), req.CPF, req.Nome, req.Email, req.Localizacao)
	respond(c, http.StatusCreated, cpf, err)
}

// @Summary Exibe cliente
// @Tags clientes
// @Produce json
// @Param cpf path string true "CPF"
// @Success 200 {object} resultResp
// @Failure 404 {object} errorResp
// @Router /clientes/{cpf} [get]
func (s *Server) getCustomer(c *gin.Context) {
	out, err := s.saga.DisplayCustomer(c.Request.Context(), c.Param("cpf"))
	respond(c, http.StatusOK, out, err)
}

// @Summary Lista clientes
// @Tags clientes
// @Produce json
// @Success 200 {object} resultResp
// @Router /clientes [get]
func (s *Server) listCustomers(c *gin.Context) {
	out, err := s.saga.ListCustomers(c.Request.Context())
	respond(c, http.StatusOK, out, err)
}

type editReq struct {
	Atributo  string `json:"atributo"`
	NovoValor string `json:"novoValor"`
}

// @Summary Edita atributo do cliente
// @Tags clientes
// @Accept json
// @Produce json
// @Param cpf path string true "CPF"
// @Param input body editReq true "Atributo e novo valor"
// @Success 200 {object} resultResp
// @Failure 400 {object} errorResp
// @Failure 404 {object} errorResp
// @Router /clientes/{cpf} [patch]
func (s *Server) editCustomer(c *gin.Context) {
	var req editReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	label, err := s.saga.EditCustomer(c.Request.Context(), c.Param("cpf"), req.Atributo, req.NovoValor)
	respond(c, http.StatusOK, label, err)
}

// @Summary Remove cliente
// @Tags clientes
// @Param cpf path string true "CPF"
// @Success 204
// @Failure 404 {object} errorResp
// @Router /clientes/{cpf} [delete]
func (s *Server) deleteCustomer(c *gin.Context) {
	if err := s.saga.RemoveCustomer(c.Request.Context(), c.Param("cpf")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Suppliers

type createSupplierReq struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
}

// @Summary Cadastra fornecedor
// @Tags fornecedores
// @Accept json
// @Produce json
// @Param input body createSupplierReq true "Fornecedor"
// @Success 201 {object} resultResp
// @Failure 400 {object} errorResp
// @Failure 409 {object} errorResp
// @Router /fornecedores [post]
func (s *Server) createSupplier(c *gin.Context) {
	var req createSupplierReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	name, err := s.saga.AddSupplier(c.Request.Context(), req.Nome, req.Email, req.Telefone)
	respond(c, http.StatusCreated, name, err)
}

// @Summary Exibe fornecedor
// @Tags fornecedores
// @Produce json
// @Param nome path string true "Nome do fornecedor"
// @Success 200 {object} resultResp
// @Failure 404 {object} errorResp
// @Router /fornecedores/{nome} [get]
func (s *Server) getSupplier(c *gin.Context) {
	out, err := s.saga.DisplaySupplier(c.Request.Context(), c.Param("nome"))
	respond(c, http.StatusOK, out, err)
}

// @Summary Lista fornecedores
// @Tags fornecedores
// @Produce json
// @Success 200 {object} resultResp
// @Router /fornecedores [get]
func (s *Server) listSuppliers(c *gin.Context) {
	out, err := s.saga.ListSuppliers(c.Request.Context())
	respond(c, http.StatusOK, out, err)
}

// @Summary Edita atributo do fornecedor
// @Tags fornecedores
// @Accept json
// @Produce json
// @Param nome path string true "Nome do fornecedor"
// @Param input body editReq true "Atributo e novo valor"
// @Success 200 {object} resultResp
// @Failure 400 {object} errorResp
// @Failure 404 {object} errorResp
// @Router /fornecedores/{nome} [patch]
func (s *Server) editSupplier(c *gin.Context) {
	var req editReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	label, err := s.saga.EditSupplier(c.Request.Context(), c.Param("nome"), req.Atributo, req.NovoValor)
	respond(c, http.StatusOK, label, err)
}

// @Summary Remove fornecedor, seu catálogo e suas contas
// @Tags fornecedores
// @Param nome path string true "Nome do fornecedor"
// @Success 204
// @Failure 404 {object} errorResp
// @Router /fornecedores/{nome} [delete]
func (s *Server) deleteSupplier(c *gin.Context) {
	if err := s.saga.RemoveSupplier(c.Request.Context(), c.Param("nome")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Products

type createProductReq struct {
	Nome      string  `json:"nome"`
	Descricao string  `json:"descricao"`
	Preco     float64 `json:"preco"`
}

// @Summary Cadastra produto no catálogo do fornecedor
// @Tags produtos
// @Accept json
// @Produce json
// @Param nome path string true "Nome do fornecedor"
// @Param input body createProductReq true "Produto"
// @Success 201 {object} resultResp
// @Failure 400 {object} errorResp
// @Failure 404 {object} errorResp
// @Failure 409 {object} errorResp
// @Router /fornecedores/{nome}/produtos [post]
func (s *Server) createProduct(c *gin.Context) {
	var req createProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	ctx := c.Request.Context()
	supplier := c.Param("nome")
	if err := s.saga.AddProduct(ctx, supplier, req.Nome, req.Descricao, req.Preco); err != nil {
		fail(c, err)
		return
	}
	out, err := s.saga.DisplayProduct(ctx, req.Nome, req.Descricao, supplier)
	respond(c, http.StatusCreated, out, err)
}

// @Summary Exibe produto
// @Tags produtos
// @Produce json
// @Param nome path string true "Nome do fornecedor"
// @Param produto path string true "Nome do produto"
// @Param descricao path string true "Descrição do produto"
// @Success 200 {object} resultResp
// @Failure 404 {object} errorResp
// @Router /fornecedores/{nome}/produtos/{produto}/{descricao} [get]
func (s *Server) getProduct(c *gin.Context) {
	out, err := s.saga.DisplayProduct(c.Request.Context(), c.Param("produto"), c.Param("descricao"), c.Param("nome"))
	respond(c, http.StatusOK, out, err)
}

type updatePriceReq struct {
	Preco float64 `json:"preco"`
}

// @Summary Altera o preço do produto
// @Tags produtos
// @Accept json
// @Produce json
// @Param nome path string true "Nome do fornecedor"
// @Param produto path string true "Nome do produto"
// @Param descricao path string true "Descrição do produto"
// @Param input body updatePriceReq true "Novo preço"
// @Success 200 {object} resultResp
// @Failure 400 {object} errorResp
// @Failure 404 {object} errorResp
// @Router /fornecedores/{nome}/produtos/{produto}/{descricao} [put]
func (s *Server) updateProduct(c *gin.Context) {
	var req updatePriceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	ctx := c.Request.Context()
	name, desc, supplier := c.Param("produto"), c.Param("descricao"), c.Param("nome")
	if err := s.saga.EditProduct(ctx, name, desc, supplier, req.Preco); err != nil {
		fail(c, err)
		return
	}
	out, err := s.saga.DisplayProduct(ctx, name, desc, supplier)
	respond(c, http.StatusOK, out, err)
}

// @Summary Remove produto
// @Tags produtos
// @Param nome path string true "Nome do fornecedor"
// @Param produto path string true "Nome do produto"
// @Param descricao path string true "Descrição do produto"
// @Success 204
// @Failure 404 {object} errorResp
// @Router /fornecedores/{nome}/produtos/{produto}/{descricao} [delete]
func (s *Server) deleteProduct(c *gin.Context) {
	if err := s.saga.RemoveProduct(c.Request.Context(), c.Param("produto"), c.Param("descricao"), c.Param("nome")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Lista o catálogo do fornecedor
// @Tags produtos
// @Produce json
// @Param nome path string true "Nome do fornecedor"
// @Success 200 {object} resultResp
// @Failure 404 {object} errorResp
// @Router /fornecedores/{nome}/produtos [get]
func (s *Server) listProducts(c *gin.Context) {
	out, err := s.saga.ListProducts(c.Request.Context(), c.Param("nome"))
	respond(c, http.StatusOK, out, err)
}

// @Summary Lista os catálogos de todos os fornecedores
// @Tags produtos
// @Produce json
// @Success 200 {object} resultResp
// @Router /produtos [get]
func (s *Server) listAllProducts(c *gin.Context) {
	out, err := s.saga.ListAllProducts(c.Request.Context())
	respond(c, http.StatusOK, out, err)
}

type createComboReq struct {
	Nome      string  `json:"nome"`
	Descricao string  `json:"descricao"`
	Fator     float64 `json:"fator"`
	Produtos  string  `json:"produtos" example:"Coxinha - Frango, Refri - Lata"`
}

// @Summary Cadastra combo a partir de produtos do fornecedor
// @Tags produtos
// @Accept json
// @Produce json
// @Param nome path string true "Nome do fornecedor"
// @Param input body createComboReq true "Combo"
// @Success 201 {object} resultResp
// @Failure 400 {object} errorResp
// @Failure 404 {object} errorResp
// @Failure 409 {object} errorResp
// @Router /fornecedores/{nome}/combos [post]
func (s *Server) createCombo(c *gin.Context) {
	var req createComboReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	ctx := c.Request.Context()
	supplier := c.Param("nome")
	if err := s.saga.AddCombo(ctx, supplier, req.Nome, req.Descricao, req.Fator, req.Produtos); err != nil {
		fail(c, err)
		return
	}
	out, err := s.saga.DisplayProduct(ctx, req.Nome, req.Descricao, supplier)
	respond(c, http.StatusCreated, out, err)
}

type updateFactorReq struct {
	Fator float64 `json:"fator"`
}

// @Summary Altera o fator de desconto do combo
// @Tags produtos
// @Accept json
// @Produce json
// @Param nome path string true "Nome do fornecedor"
// @Param produto path string true "Nome do combo"
// @Param descricao path string true "Descrição do combo"
// @Param input body updateFactorReq true "Novo fator"
// @Success 200 {object} resultResp
// @Failure 400 {object} errorResp
// @Failure 404 {object} errorResp
// @Router /fornecedores/{nome}/combos/{produto}/{descricao} [put]
func (s *Server) updateCombo(c *gin.Context) {
	var req updateFactorReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	ctx := c.Request.Context()
	name, desc, supplier := c.Param("produto"), c.Param("descricao"), c.Param("nome")
	if err := s.saga.EditCombo(ctx, name, desc, supplier, req.Fator); err != nil {
		fail(c, err)
		return
	}
	out, err := s.saga.DisplayProduct(ctx, name, desc, supplier)
	respond(c, http.StatusOK, out, err)
}

// Purchases and accounts

type createPurchaseReq struct {
	CPF        string `json:"cpf"`
	Fornecedor string `json:"fornecedor"`
	Data       string `json:"data" example:"10/05/2020"`
	Produto    string `json:"produto"`
	Descricao  string `json:"descricao"`
}

// @Summary Registra compra na conta do cliente com o fornecedor
// @Tags compras
// @Accept json
// @Produce json
// @Param input body createPurchaseReq true "Compra"
// @Success 201 {object} resultResp
// @Failure 400 {object} errorResp
// @Failure 404 {object} errorResp
// @Router /compras [post]
func (s *Server) createPurchase(c *gin.Context) {
	var req createPurchaseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	ctx := c.Request.Context()
	if err := s.saga.AddPurchase(ctx, req.CPF, req.Fornecedor, req.Data, req.Produto, req.Descricao); err != nil {
		fail(c, err)
		return
	}
	debit, err := s.saga.GetDebit(ctx, req.CPF, req.Fornecedor)
	if kind, ok := domain.KindOf(err); ok && kind == domain.KindNotFound {
		// the purchase is stored; an account summing to zero reports no debit
		debit, err = "0.00", nil
	}
	respond(c, http.StatusCreated, debit, err)
}

// @Summary Lista todas as compras pelo critério ativo
// @Tags compras
// @Produce json
// @Success 200 {object} resultResp
// @Failure 409 {object} errorResp
// @Router /compras [get]
func (s *Server) listPurchases(c *gin.Context) {
	out, err := s.saga.ListPurchases(c.Request.Context())
	respond(c, http.StatusOK, out, err)
}

type criterionReq struct {
	Criterio string `json:"criterio" example:"Data"`
}

// @Summary Seleciona o critério de ordenação das compras
// @Tags compras
// @Accept json
// @Produce json
// @Param input body criterionReq true "Cliente, Fornecedor ou Data"
// @Success 200 {object} resultResp
// @Failure 400 {object} errorResp
// @Router /compras/criterio [put]
func (s *Server) selectCriterion(c *gin.Context) {
	var req criterionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	err := s.saga.SortBy(c.Request.Context(), req.Criterio)
	respond(c, http.StatusOK, req.Criterio, err)
}

// @Summary Exibe as contas do cliente com todos os fornecedores
// @Tags contas
// @Produce json
// @Param cpf path string true "CPF"
// @Success 200 {object} resultResp
// @Failure 404 {object} errorResp
// @Router /clientes/{cpf}/contas [get]
func (s *Server) getAccounts(c *gin.Context) {
	out, err := s.saga.DisplayAccounts(c.Request.Context(), c.Param("cpf"))
	respond(c, http.StatusOK, out, err)
}

// @Summary Exibe a conta do cliente com o fornecedor
// @Tags contas
// @Produce json
// @Param cpf path string true "CPF"
// @Param fornecedor path string true "Nome do fornecedor"
// @Success 200 {object} resultResp
// @Failure 404 {object} errorResp
// @Router /clientes/{cpf}/contas/{fornecedor} [get]
func (s *Server) getAccount(c *gin.Context) {
	out, err := s.saga.DisplayAccount(c.Request.Context(), c.Param("cpf"), c.Param("fornecedor"))
	respond(c, http.StatusOK, out, err)
}

// @Summary Débito do cliente com o fornecedor
// @Tags contas
// @Produce json
// @Param cpf path string true "CPF"
// @Param fornecedor path string true "Nome do fornecedor"
// @Success 200 {object} resultResp
// @Failure 404 {object} errorResp
// @Router /clientes/{cpf}/contas/{fornecedor}/debito [get]
func (s *Server) getDebit(c *gin.Context) {
	out, err := s.saga.GetDebit(c.Request.Context(), c.Param("cpf"), c.Param("fornecedor"))
	respond(c, http.StatusOK, out, err)
}

// @Summary Quita a conta do cliente com o fornecedor
// @Tags contas
// @Param cpf path string true "CPF"
// @Param fornecedor path string true "Nome do fornecedor"
// @Success 204
// @Failure 404 {object} errorResp
// @Router /clientes/{cpf}/contas/{fornecedor}/pagamento [post]
func (s *Server) pay(c *gin.Context) {
	if err := s.saga.Pay(c.Request.Context(), c.Param("cpf"), c.Param("fornecedor")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
