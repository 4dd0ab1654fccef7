package main

import (
	"pushrelay/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.DeviceModel{},
		model.PushTokenModel{},
		model.TopicSubscriptionModel{},
		model.NotificationJobModel{},
		model.DeliveryAttemptModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
