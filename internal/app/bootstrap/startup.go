// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	adminstore "github.com/Nexgeno-Developers/novaa-cms/internal/app/store/admins"
	"github.com/Nexgeno-Developers/novaa-cms/internal/app/system/authutil"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs once after DB connections and schema/index setup are complete,
// but before the HTTP handler is built and requests are served.
//
// The only startup work here is seeding the initial admin account. Index
// creation and default content seeding happen in EnsureSchema.
//
// Returning a non-nil error aborts startup and prevents the server from
// starting.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if appCfg.SeedAdminEmail == "" {
		return nil
	}

	// An empty hash leaves the account reachable only via Google sign-in;
	// password login rejects accounts without a stored hash.
	var passwordHash string
	if appCfg.SeedAdminPassword != "" {
		hash, err := authutil.HashPassword(appCfg.SeedAdminPassword)
		if err != nil {
			logger.Error("failed to hash seed admin password", zap.Error(err))
			return err
		}
		passwordHash = hash
	}

	admins := adminstore.New(deps.MongoDatabase)
	if err := admins.EnsureAdmin(ctx, appCfg.SeedAdminEmail, appCfg.SeedAdminName, passwordHash); err != nil {
		logger.Error("failed to seed admin account", zap.Error(err))
		return err
	}

	logger.Info("seed admin account ensured", zap.String("email", appCfg.SeedAdminEmail))
	return nil
}
