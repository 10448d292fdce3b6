package container

import (
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-graphql-blog/config"
	"github.com/oksasatya/go-graphql-blog/internal/infrastructure/mongodb"
	"github.com/oksasatya/go-graphql-blog/pkg/helpers"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg          *config.Config
	logger       *logrus.Logger
	mongoConn    *mongodb.Conn
	tokenManager *helpers.TokenManager
)

func SetConfig(c *config.Config)        { cfg = c }
func GetConfig() *config.Config         { return cfg }
func SetLogger(l *logrus.Logger)        { logger = l }
func GetLogger() *logrus.Logger         { return logger }
func SetMongo(c *mongodb.Conn)          { mongoConn = c }
func GetMongo() *mongodb.Conn           { return mongoConn }
func SetTokens(m *helpers.TokenManager) { tokenManager = m }
func GetTokens() *helpers.TokenManager  { return tokenManager }
