package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/acai-control-api/infrastructure/database/postgres"
	"github.com/vfg2006/acai-control-api/infrastructure/repository"
	"github.com/vfg2006/acai-control-api/infrastructure/repository/memory"
	"github.com/vfg2006/acai-control-api/internal/api"
	"github.com/vfg2006/acai-control-api/internal/config"
	"github.com/vfg2006/acai-control-api/internal/domain"
	"github.com/vfg2006/acai-control-api/internal/scheduler"
	"github.com/vfg2006/acai-control-api/internal/usecases/bookkeeping"
	"github.com/vfg2006/acai-control-api/internal/usecases/catalog"
	"github.com/vfg2006/acai-control-api/internal/usecases/reporting"
	"github.com/vfg2006/acai-control-api/internal/usecases/selling"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		productRepo  repository.ProductRepository
		vendorRepo   repository.VendorRepository
		saleRepo     repository.SaleRepository
		cashFlowRepo repository.CashFlowRepository
	)

	switch cfg.Database.Driver {
	case "memory":
		logrus.Info("Usando armazenamento em memória")
		store := memory.NewStore()
		productRepo = memory.NewProductRepository(store)
		vendorRepo = memory.NewVendorRepository(store)
		saleRepo = memory.NewSaleRepository(store)
		cashFlowRepo = memory.NewCashFlowRepository(store)

		// Sem persistência, o catálogo inicial é semeado a cada subida
		seedCatalog(productRepo, vendorRepo)

	default:
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		productRepo = repository.NewProductRepository(pgConn)
		vendorRepo = repository.NewVendorRepository(pgConn)
		saleRepo = repository.NewSaleRepository(pgConn)
		cashFlowRepo = repository.NewCashFlowRepository(pgConn)
	}

	catalogService := catalog.NewService(productRepo, vendorRepo)
	saleService := selling.NewService(saleRepo, productRepo, vendorRepo)
	reportingService := reporting.NewService(saleRepo)
	cashFlowService := bookkeeping.NewService(cashFlowRepo)

	// Inicializa o agendador de fechamento diário
	dailyClosingService := scheduler.NewDailyClosingService(reportingService, cfg)

	if err := dailyClosingService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de fechamento diário")
	} else {
		logrus.Info("Agendador de fechamento diário iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		catalogService,
		saleService,
		reportingService,
		cashFlowService,
		dailyClosingService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// seedCatalog carrega o catálogo padrão da banca no armazenamento em memória
func seedCatalog(
	productRepo repository.ProductRepository,
	vendorRepo repository.VendorRepository,
) {
	pricePerLiter := decimal.RequireFromString("14.00")
	products := []*domain.Product{
		{Name: "Açaí 500ml", Type: domain.ProductTypeAcai500ml, Price: decimal.RequireFromString("8.50")},
		{Name: "Açaí 1L", Type: domain.ProductTypeAcai1000ml, Price: decimal.RequireFromString("15.00")},
		{Name: "Açaí Personalizado", Type: domain.ProductTypeAcaiCustom, PricePerLiter: &pricePerLiter},
		{Name: "Farinha de Tapioca", Type: domain.ProductTypeTapioca, Price: decimal.RequireFromString("4.50")},
		{Name: "Farinha de Mandioca", Type: domain.ProductTypeCassava, Price: decimal.RequireFromString("3.80")},
	}

	vendors := []*domain.Vendor{
		{Name: "Maria Silva", CommissionRate: decimal.RequireFromString("0.10")},
		{Name: "João Santos", CommissionRate: decimal.RequireFromString("0.08")},
		{Name: "Ana Costa", CommissionRate: decimal.RequireFromString("0.12")},
	}

	for _, product := range products {
		if err := productRepo.Create(product); err != nil {
			logrus.WithError(err).Warnf("Erro ao semear produto %s", product.Name)
		}
	}

	for _, vendor := range vendors {
		if err := vendorRepo.Create(vendor); err != nil {
			logrus.WithError(err).Warnf("Erro ao semear vendedor %s", vendor.Name)
		}
	}

	logrus.WithFields(logrus.Fields{
		"products": len(products),
		"vendors":  len(vendors),
	}).Info("Catálogo inicial semeado")
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
