package constants

// 订单状态常量
const (
	OrderStatusPending      = "Pending"
	OrderStatusInProduction = "InProduction"
	OrderStatusCompleted    = "Completed"
	OrderStatusDelivered    = "Delivered"
	OrderStatusCancelled    = "Cancelled"
)

// OrderStatuses 状态词表（下拉框顺序）
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusInProduction,
	OrderStatusCompleted,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// LegacyOrderStatusLabels 旧版桌面程序写入数据库的葡语状态文本
var LegacyOrderStatusLabels = map[string]string{
	"Pendente":    OrderStatusPending,
	"Em Produção": OrderStatusInProduction,
	"Concluído":   OrderStatusCompleted,
	"Entregue":    OrderStatusDelivered,
	"Cancelado":   OrderStatusCancelled,
}

// 日期与金额格式
const (
	OrderDateLayout       = "2006-01-02"
	DefaultCurrencySymbol = "R$"
)

// 数据库驱动
const (
	DBDriverSQLite   = "sqlite"
	DBDriverPostgres = "postgres"
)
