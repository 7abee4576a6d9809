package provider

import (
	"time"

	"github.com/marcenaria-picapau/internal/cache"
	"github.com/marcenaria-picapau/internal/config"
	"github.com/marcenaria-picapau/internal/console"
	"github.com/marcenaria-picapau/internal/logger"
	"github.com/marcenaria-picapau/internal/models"
	"github.com/marcenaria-picapau/internal/repository"
	"github.com/marcenaria-picapau/internal/service"

	"gorm.io/gorm"
)

// Container 依赖注入容器
type Container struct {
	Config *config.Config

	// Repositories
	UserRepo    repository.UserRepository
	ProductRepo repository.ProductRepository
	OrderRepo   repository.OrderRepository
	ReportRepo  repository.ReportRepository

	// Services
	AuthService    *service.AuthService
	ProductService *service.ProductService
	OrderService   *service.OrderService
	ReportService  *service.ReportService
}

// NewContainer 使用全局数据库连接初始化容器
func NewContainer(cfg *config.Config) *Container {
	return NewContainerWithDB(cfg, models.DB)
}

// NewContainerWithDB 使用指定数据库连接初始化容器
func NewContainerWithDB(cfg *config.Config, db *gorm.DB) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}
	if cfg.Redis.CatalogTTLSeconds > 0 {
		cache.SetCatalogTTL(time.Duration(cfg.Redis.CatalogTTLSeconds) * time.Second)
	}

	c := &Container{Config: cfg}

	// 1. 初始化 Repositories
	c.initRepositories(db)

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories(db *gorm.DB) {
	c.UserRepo = repository.NewUserRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.ReportRepo = repository.NewReportRepository(db)
}

func (c *Container) initServices() {
	c.AuthService = service.NewAuthService(c.UserRepo)
	c.ProductService = service.NewProductService(c.ProductRepo)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.ProductRepo)
	c.ReportService = service.NewReportService(c.ReportRepo, c.Config.Order.CurrencySymbol)
}

// ConsoleServices 会话所需的服务集合
func (c *Container) ConsoleServices() console.Services {
	return console.Services{
		Products: c.ProductService,
		Orders:   c.OrderService,
		Reports:  c.ReportService,
		Auth:     c.AuthService,
	}
}
