package local

import (
	"github.com/m04kA/SMC-UrbanServices/pkg/dbmetrics"
)

// DBExecutor переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
