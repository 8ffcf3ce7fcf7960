package slotconfig

import (
	"github.com/freshkart/FK-DeliverySlotsService/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
