package http

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vidasync/health-api/internal/adapter/database"
	"github.com/vidasync/health-api/internal/app/auth"
	"github.com/vidasync/health-api/internal/app/exam"
	"github.com/vidasync/health-api/internal/app/measurement"
	"github.com/vidasync/health-api/internal/app/profile"
	"github.com/vidasync/health-api/internal/app/vaccination"
	"github.com/vidasync/health-api/internal/infra/metrics"
	"github.com/vidasync/health-api/internal/infra/middleware"
	"github.com/vidasync/health-api/internal/testutils"
	"github.com/vidasync/health-api/pkg/cache"
	"github.com/vidasync/health-api/pkg/security"
	"github.com/vidasync/health-api/pkg/validation"
)

// As métricas usam um registro de processo; uma única instância serve
// todos os testes do pacote.
var testMetrics = metrics.NewAPIMetrics()

var integrationSecret = []byte("segredo-de-teste-com-32-bytes!!!")

type testAPI struct {
	router     *gin.Engine
	keyManager *security.KeyManager
}

// setupAPI monta a aplicação completa sobre sqlite em memória, com as
// mesmas rotas e middlewares do binário.
func setupAPI(t *testing.T) *testAPI {
	t.Helper()

	logger := testutils.TestLogger(t)

	db, err := database.NewDatabase(context.Background(), database.Config{
		Driver:          "sqlite",
		DSN:             ":memory:",
		MaxIdleConns:    1,
		MaxOpenConns:    1,
		ConnMaxLifetime: time.Minute,
		SlowThreshold:   200 * time.Millisecond,
	}, logger)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	keyManager, err := security.NewKeyManager(integrationSecret, logger)
	require.NoError(t, err)

	userRepo := database.NewUserRepository(db.DB())
	authService := auth.NewService(keyManager, userRepo, time.Hour, logger)
	examService := exam.NewService(database.NewExamRepository(db.DB()), logger)
	vaccinationService := vaccination.NewService(database.NewVaccinationRepository(db.DB()), logger)
	measurementService := measurement.NewService(database.NewMeasurementRepository(db.DB()), logger)
	profileService := profile.NewService(database.NewProfileRepository(db.DB()), cache.NewNoopCache(), logger)

	middlewares := middleware.NewMiddleware(logger, authService, testMetrics, nil)

	authHandler := NewAuthHandler(authService, logger)
	profileHandler := NewProfileHandler(profileService, logger)
	examHandler := NewExamHandler(examService, logger)
	vaccinationHandler := NewVaccinationHandler(vaccinationService, logger)
	measurementHandler := NewMeasurementHandler(measurementService, logger)

	validation.RegisterGinValidators()

	router := testutils.SetupTestRouter(t)
	router.POST("/sign-up", authHandler.SignUp)
	router.POST("/sign-in", authHandler.SignIn)

	authenticated := router.Group("/")
	authenticated.Use(middlewares.Authenticate)
	{
		authenticated.GET("/profile", profileHandler.Get)
		authenticated.POST("/profile", profileHandler.CreateOrUpdate)

		authenticated.GET("/exam", examHandler.List)
		authenticated.GET("/exam/filter", examHandler.Search)
		authenticated.POST("/exam", examHandler.Create)
		authenticated.GET("/exam/:examId", examHandler.GetByID)
		authenticated.PUT("/exam/:examId", examHandler.Update)
		authenticated.DELETE("/exam/:examId", examHandler.Delete)

		authenticated.GET("/vaccination", vaccinationHandler.List)
		authenticated.POST("/vaccination", vaccinationHandler.Create)

		authenticated.GET("/measurement/:measurementType", measurementHandler.Get)
		authenticated.POST("/measurement/:measurementType", measurementHandler.Create)
		authenticated.PUT("/measurement/:measurementType", measurementHandler.Update)
		authenticated.DELETE("/measurement/:measurementType", measurementHandler.Delete)
	}

	return &testAPI{router: router, keyManager: keyManager}
}

// signUpAndSignIn cadastra um usuário e devolve o cabeçalho Authorization
// pronto para uso.
func (api *testAPI) signUpAndSignIn(t *testing.T, email string) map[string]string {
	t.Helper()

	resp := testutils.MakeRequest(t, api.router, http.MethodPost, "/sign-up",
		gin.H{"email": email, "password": "senha-forte"}, nil)
	testutils.RequireHTTPStatus(t, resp, http.StatusOK)

	resp = testutils.MakeRequest(t, api.router, http.MethodPost, "/sign-in",
		gin.H{"email": email, "password": "senha-forte"}, nil)
	testutils.RequireHTTPStatus(t, resp, http.StatusOK)

	var body struct {
		Token string `json:"token"`
	}
	testutils.ParseResponse(t, resp, &body)
	require.NotEmpty(t, body.Token)

	return map[string]string{"Authorization": "Bearer " + body.Token}
}

func TestSignUpESignIn(t *testing.T) {
	api := setupAPI(t)

	resp := testutils.MakeRequest(t, api.router, http.MethodPost, "/sign-up",
		gin.H{"email": "maria@example.com", "password": "senha"}, nil)
	testutils.RequireHTTPStatus(t, resp, http.StatusOK)

	// Email repetido conflita
	resp = testutils.MakeRequest(t, api.router, http.MethodPost, "/sign-up",
		gin.H{"email": "maria@example.com", "password": "outra"}, nil)
	testutils.RequireHTTPStatus(t, resp, http.StatusConflict)

	// Email malformado é barrado no binding
	resp = testutils.MakeRequest(t, api.router, http.MethodPost, "/sign-up",
		gin.H{"email": "nao-e-email"}, nil)
	testutils.RequireHTTPStatus(t, resp, http.StatusBadRequest)

	resp = testutils.MakeRequest(t, api.router, http.MethodPost, "/sign-in",
		gin.H{"email": "maria@example.com", "password": "senha"}, nil)
	testutils.RequireHTTPStatus(t, resp, http.StatusOK)

	resp = testutils.MakeRequest(t, api.router, http.MethodPost, "/sign-in",
		gin.H{"email": "maria@example.com", "password": "senha-errada"}, nil)
	testutils.RequireHTTPStatus(t, resp, http.StatusUnauthorized)
}

// As três variantes de falha de autenticação respondem 401: token
// ausente, token inválido e token válido sem sessão persistida.
func TestAutenticacaoObrigatoria(t *testing.T) {
	api := setupAPI(t)

	resp := testutils.MakeRequest(t, api.router, http.MethodGet, "/exam", nil, nil)
	testutils.RequireHTTPStatus(t, resp, http.StatusUnauthorized)

	resp = testutils.MakeRequest(t, api.router, http.MethodGet, "/exam", nil,
		map[string]string{"Authorization": "Bearer nao-e-um-jwt"})
	testutils.RequireHTTPStatus(t, resp, http.StatusUnauthorized)

	// Token criptograficamente válido mas nunca registrado via sign-in
	orphan, err := api.keyManager.GenerateToken(1, time.Hour)
	require.NoError(t, err)

	resp = testutils.MakeRequest(t, api.router, http.MethodGet, "/exam", nil,
		map[string]string{"Authorization": "Bearer " + orphan})
	testutils.RequireHTTPStatus(t, resp, http.StatusUnauthorized)

	// Esquema diferente de Bearer equivale a token ausente
	resp = testutils.MakeRequest(t, api.router, http.MethodGet, "/exam", nil,
		map[string]string{"Authorization": "Basic abc"})
	testutils.RequireHTTPStatus(t, resp, http.StatusUnauthorized)
}

func TestExamCRUD(t *testing.T) {
	api := setupAPI(t)
	headers := api.signUpAndSignIn(t, "maria@example.com")

	// Coleção vazia responde 404, não lista vazia
	resp := testutils.MakeRequest(t, api.router, http.MethodGet, "/exam", nil, headers)
	testutils.RequireHTTPStatus(t, resp, http.StatusNotFound)

	body := gin.H{"name": "hemograma", "examType": "sangue", "description": "completo", "local": "lab central"}
	resp = testutils.MakeRequest(t, api.router, http.MethodPost, "/exam", body, headers)
	testutils.RequireHTTPStatus(t, resp, http.StatusOK)

	var created struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}
	testutils.ParseResponse(t, resp, &created)
	require.NotZero(t, created.ID)

	resp = testutils.MakeRequest(t, api.router, http.MethodGet, "/exam", nil, headers)
	testutils.RequireHTTPStatus(t, resp, http.StatusOK)

	var list []struct {
		ID uint `json:"id"`
	}
	testutils.ParseResponse(t, resp, &list)
	assert.Len(t, list, 1)

	// Busca por prefixo
	resp = testutils.MakeRequest(t, api.router, http.MethodGet, "/exam/filter?search=hemo", nil, headers)
	testutils.RequireHTTPStatus(t, resp, http.StatusOK)

	resp = testutils.MakeRequest(t, api.router, http.MethodGet, "/exam/filter?search=inexistente", nil, headers)
	testutils.RequireHTTPStatus(t, resp, http.StatusNotFound)

	// Atualização devolve o registro recarregado
	update := gin.H{"name": "hemograma completo", "examType": "sangue", "description": "completo", "local": "lab central"}
	resp = testutils.MakeRequest(t, api.router, http.MethodPut, fmt.Sprintf("/exam/%d", created.ID), update, headers)
	testutils.RequireHTTPStatus(t, resp, http.StatusOK)

	var updated struct {
		Name string `json:"name"`
	}
	testutils.ParseResponse(t, resp, &updated)
	assert.Equal(t, "hemograma completo", updated.Name)

	resp = testutils.MakeRequest(t, api.router, http.MethodDelete, fmt.Sprintf("/exam/%d", created.ID), nil, headers)
	testutils.RequireHTTPStatus(t, resp, http.StatusOK)

	// Segunda remoção e leitura posterior respondem 404
	resp = testutils.MakeRequest(t, api.router, http.MethodDelete, fmt.Sprintf("/exam/%d", created.ID), nil, headers)
	testutils.RequireHTTPStatus(t, resp, http.StatusNotFound)

	resp = testutils.MakeRequest(t, api.router, http.MethodGet, fmt.Sprintf("/exam/%d", created.ID), nil, headers)
	testutils.RequireHTTPStatus(t, resp, http.StatusNotFound)
}

// Registro existente de outro usuário responde 401, distinto do 404 de
// registro inexistente.
func TestExamDeOutroUsuario(t *testing.T) {
	api := setupAPI(t)
	donaHeaders := api.signUpAndSignIn(t, "dona@example.com")
	outroHeaders := api.signUpAndSignIn(t, "outro@example.com")

	body := gin.H{"name": "hemograma", "examType": "sangue", "description": "completo", "local": "lab"}
	resp := testutils.MakeRequest(t, api.router, http.MethodPost, "/exam", body, donaHeaders)
	testutils.RequireHTTPStatus(t, resp, http.StatusOK)

	var created struct {
		ID uint `json:"id"`
	}
	testutils.ParseResponse(t, resp, &created)

	resp = testutils.MakeRequest(t, api.router, http.MethodGet, fmt.Sprintf("/exam/%d", created.ID), nil, outroHeaders)
	testutils.RequireHTTPStatus(t, resp, http.StatusUnauthorized)

	resp = testutils.MakeRequest(t, api.router, http.MethodDelete, fmt.Sprintf("/exam/%d", created.ID), nil, outroHeaders)
	testutils.RequireHTTPStatus(t, resp, http.StatusUnauthorized)

	// Id não numérico é indistinguível de inexistente
	resp = testutils.MakeRequest(t, api.router, http.MethodGet, "/exam/abc", nil, outroHeaders)
	testutils.RequireHTTPStatus(t, resp, http.StatusNotFound)
}

func TestProfile(t *testing.T) {
	api := setupAPI(t)
	headers := api.signUpAndSignIn(t, "maria@example.com")

	resp := testutils.MakeRequest(t, api.router, http.MethodGet, "/profile", nil, headers)
	testutils.RequireHTTPStatus(t, resp, http.StatusNotFound)

	// CPF com dígito verificador errado é barrado no binding
	invalid := gin.H{
		"name": "Maria da Silva", "cpf": "52998224724",
		"birthday": "1990-03-14T00:00:00Z", "phone": "(11) 91234-5678",
		"blood": "O+", "sex": "F",
	}
	resp = testutils.MakeRequest(t, api.router, http.MethodPost, "/profile", invalid, headers)
	testutils.RequireHTTPStatus(t, resp, http.StatusBadRequest)

	valid := gin.H{
		"name": "Maria da Silva", "cpf": "52998224725",
		"birthday": "1990-03-14T00:00:00Z", "phone": "(11) 91234-5678",
		"blood": "O+", "sex": "F",
	}
	resp = testutils.MakeRequest(t, api.router, http.MethodPost, "/profile", valid, headers)
	testutils.RequireHTTPStatus(t, resp, http.StatusOK)

	// Segundo POST sobrescreve em vez de duplicar
	valid["name"] = "Maria S."
	resp = testutils.MakeRequest(t, api.router, http.MethodPost, "/profile", valid, headers)
	testutils.RequireHTTPStatus(t, resp, http.StatusOK)

	resp = testutils.MakeRequest(t, api.router, http.MethodGet, "/profile", nil, headers)
	testutils.RequireHTTPStatus(t, resp, http.StatusOK)

	var stored struct {
		Name string `json:"name"`
	}
	testutils.ParseResponse(t, resp, &stored)
	assert.Equal(t, "Maria S.", stored.Name)
}

func TestMeasurement(t *testing.T) {
	api := setupAPI(t)
	headers := api.signUpAndSignIn(t, "maria@example.com")

	// Segmento desconhecido é rejeitado com 400, não tratado como vazio
	resp := testutils.MakeRequest(t, api.router, http.MethodGet, "/measurement/cholesterol", nil, headers)
	testutils.RequireHTTPStatus(t, resp, http.StatusBadRequest)

	resp = testutils.MakeRequest(t, api.router, http.MethodGet, "/measurement/glucose", nil, headers)
	testutils.RequireHTTPStatus(t, resp, http.StatusNotFound)

	body := gin.H{"observation": "em jejum", "morning": "98", "afternoon": "110", "night": "105"}
	resp = testutils.MakeRequest(t, api.router, http.MethodPost, "/measurement/glucose", body, headers)
	testutils.RequireHTTPStatus(t, resp, http.StatusOK)

	var created struct {
		ID   uint   `json:"id"`
		Type string `json:"type"`
	}
	testutils.ParseResponse(t, resp, &created)
	assert.Equal(t, "GLUCOSE", created.Type)

	// A coleção de outro tipo continua vazia
	resp = testutils.MakeRequest(t, api.router, http.MethodGet, "/measurement/oxygen", nil, headers)
	testutils.RequireHTTPStatus(t, resp, http.StatusNotFound)

	resp = testutils.MakeRequest(t, api.router, http.MethodGet, "/measurement/glucose", nil, headers)
	testutils.RequireHTTPStatus(t, resp, http.StatusOK)

	// Leitura pontual e atualização usam o id na query string
	path := fmt.Sprintf("/measurement/glucose?measurementId=%d", created.ID)

	resp = testutils.MakeRequest(t, api.router, http.MethodGet, path, nil, headers)
	testutils.RequireHTTPStatus(t, resp, http.StatusOK)

	update := gin.H{"observation": "pós-almoço", "morning": "101", "afternoon": "112", "night": "107"}
	resp = testutils.MakeRequest(t, api.router, http.MethodPut, path, update, headers)
	testutils.RequireHTTPStatus(t, resp, http.StatusOK)

	var updated struct {
		Observation string `json:"observation"`
		Type        string `json:"type"`
	}
	testutils.ParseResponse(t, resp, &updated)
	assert.Equal(t, "pós-almoço", updated.Observation)
	assert.Equal(t, "GLUCOSE", updated.Type)

	resp = testutils.MakeRequest(t, api.router, http.MethodDelete, path, nil, headers)
	testutils.RequireHTTPStatus(t, resp, http.StatusOK)

	resp = testutils.MakeRequest(t, api.router, http.MethodDelete, path, nil, headers)
	testutils.RequireHTTPStatus(t, resp, http.StatusNotFound)
}

func TestVaccination(t *testing.T) {
	api := setupAPI(t)
	headers := api.signUpAndSignIn(t, "maria@example.com")

	resp := testutils.MakeRequest(t, api.router, http.MethodGet, "/vaccination", nil, headers)
	testutils.RequireHTTPStatus(t, resp, http.StatusNotFound)

	body := gin.H{"name": "influenza", "dose": "1", "manufacturer": "butantan", "lot": "L123"}
	resp = testutils.MakeRequest(t, api.router, http.MethodPost, "/vaccination", body, headers)
	testutils.RequireHTTPStatus(t, resp, http.StatusOK)

	// Campo obrigatório ausente é barrado no binding
	resp = testutils.MakeRequest(t, api.router, http.MethodPost, "/vaccination",
		gin.H{"name": "influenza"}, headers)
	testutils.RequireHTTPStatus(t, resp, http.StatusBadRequest)

	resp = testutils.MakeRequest(t, api.router, http.MethodGet, "/vaccination", nil, headers)
	testutils.RequireHTTPStatus(t, resp, http.StatusOK)
}
