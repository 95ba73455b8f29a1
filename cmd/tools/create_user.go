package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/vidasync/health-api/internal/adapter/database"
	"github.com/vidasync/health-api/internal/domain/model"
	"github.com/vidasync/health-api/pkg/security"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Ferramenta de linha de comando para criar um usuário diretamente no
// banco, útil para ambientes sem a API no ar.
func main() {
	var (
		email    string
		password string
		dbDriver string
		dbDSN    string
		verbose  bool
	)

	flag.StringVar(&email, "email", "", "Email do usuário")
	flag.StringVar(&password, "password", "", "Senha do usuário (vazia gera credencial aleatória)")
	flag.StringVar(&dbDriver, "driver", "postgres", "Driver do banco de dados (sqlite, mysql, postgres)")
	flag.StringVar(&dbDSN, "dsn", "host=localhost user=healthapi password=healthapi dbname=healthapi port=5432", "DSN do banco de dados")
	flag.BoolVar(&verbose, "verbose", false, "Mostrar logs detalhados")
	flag.Parse()

	if email == "" {
		fmt.Println("Erro: email não pode ser vazio.")
		flag.Usage()
		os.Exit(1)
	}

	cfg := zap.NewProductionConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
		cfg.OutputPaths = []string{"stderr"}
	}

	logger, err := cfg.Build()
	if err != nil {
		fmt.Printf("Erro ao inicializar logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx := context.Background()
	db, err := database.NewDatabase(ctx, database.Config{
		Driver:          dbDriver,
		DSN:             dbDSN,
		MaxIdleConns:    5,
		MaxOpenConns:    10,
		ConnMaxLifetime: 5 * time.Minute,
		SlowThreshold:   200 * time.Millisecond,
	}, logger)
	if err != nil {
		fmt.Printf("Erro ao conectar ao banco de dados: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// Conta sem senha recebe credencial aleatória, como no cadastro da API
	if password == "" {
		password = security.RandomCredential()
		fmt.Println("Senha não informada; credencial aleatória gerada.")
	}

	hashed, err := security.HashPassword(password)
	if err != nil {
		fmt.Printf("Erro ao processar senha: %v\n", err)
		os.Exit(1)
	}

	userRepo := database.NewUserRepository(db.DB())

	if _, err := userRepo.GetUserByEmail(ctx, email); err == nil {
		fmt.Printf("Erro: usuário com email %s já existe.\n", email)
		os.Exit(1)
	}

	user := &model.User{Email: email, Password: hashed}
	if err := userRepo.CreateUser(ctx, user); err != nil {
		fmt.Printf("Erro ao salvar usuário no banco de dados: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\nUsuário criado com sucesso")
	fmt.Printf("  ID:    %d\n", user.ID)
	fmt.Printf("  Email: %s\n", user.Email)
	fmt.Println("\nFaça login via POST /sign-in para obter um token.")
}
