package repository

import (
	"context"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Repository struct {
	db    *gorm.DB
	redis *redis.Client
}

func New(dsn string, redisEndpoint string, redisPassword string) (*Repository, error) {
	// TranslateError нужен, чтобы гонка двух вставок по одному составному
	// ключу приходила как gorm.ErrDuplicatedKey, а не как сырая ошибка pg.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     redisEndpoint,
		Password: redisPassword,
		DB:       0,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return &Repository{
		db:    db,
		redis: rdb,
	}, nil
}

func (r *Repository) DB() *gorm.DB {
	return r.db
}

func (r *Repository) Redis() *redis.Client {
	return r.redis
}
