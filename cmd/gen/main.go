package main

import (
	"breadmap/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.BakeryModel{},
		model.ThemeModel{},
		model.BakeryThemeModel{},
		model.ReviewModel{},
		model.FavoriteModel{},
		model.FavoriteShareModel{},
		model.BadgeModel{},
		model.UserBadgeModel{},
		model.ChallengeModel{},
		model.ChallengeBakeryModel{},
		model.UserDeviceModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
