// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"time"

	authapifeature "github.com/Nexgeno-Developers/novaa-cms/internal/app/features/authapi"
	authgooglefeature "github.com/Nexgeno-Developers/novaa-cms/internal/app/features/authgoogle"
	blogsapifeature "github.com/Nexgeno-Developers/novaa-cms/internal/app/features/blogsapi"
	categoriesapifeature "github.com/Nexgeno-Developers/novaa-cms/internal/app/features/categoriesapi"
	contentfeature "github.com/Nexgeno-Developers/novaa-cms/internal/app/features/content"
	enquiriesapifeature "github.com/Nexgeno-Developers/novaa-cms/internal/app/features/enquiriesapi"
	healthfeature "github.com/Nexgeno-Developers/novaa-cms/internal/app/features/health"
	mediaapifeature "github.com/Nexgeno-Developers/novaa-cms/internal/app/features/mediaapi"
	pagesapifeature "github.com/Nexgeno-Developers/novaa-cms/internal/app/features/pagesapi"
	projectsapifeature "github.com/Nexgeno-Developers/novaa-cms/internal/app/features/projectsapi"
	adminstore "github.com/Nexgeno-Developers/novaa-cms/internal/app/store/admins"
	blogcategorystore "github.com/Nexgeno-Developers/novaa-cms/internal/app/store/blogcategories"
	blogstore "github.com/Nexgeno-Developers/novaa-cms/internal/app/store/blogs"
	categorystore "github.com/Nexgeno-Developers/novaa-cms/internal/app/store/categories"
	contentstore "github.com/Nexgeno-Developers/novaa-cms/internal/app/store/content"
	enquirystore "github.com/Nexgeno-Developers/novaa-cms/internal/app/store/enquiries"
	"github.com/Nexgeno-Developers/novaa-cms/internal/app/store/oauthstate"
	pagestore "github.com/Nexgeno-Developers/novaa-cms/internal/app/store/pages"
	projectstore "github.com/Nexgeno-Developers/novaa-cms/internal/app/store/projects"
	sectionstore "github.com/Nexgeno-Developers/novaa-cms/internal/app/store/sections"
	"github.com/Nexgeno-Developers/novaa-cms/internal/app/system/apicors"
	"github.com/Nexgeno-Developers/novaa-cms/internal/app/system/auth"
	"github.com/Nexgeno-Developers/novaa-cms/internal/app/system/jsonutil"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/middleware"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed.
//
// Route layout:
//   - Public site API under /api/* : no auth, permissive CORS, read-only
//     except enquiry submission.
//   - Admin API under /api/cms/* : JWT cookie auth + CSRF on mutations,
//     restrictive CORS from core config.
//   - Health endpoints at /health, /ready, /readyz, /livez.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"

	authManager, err := auth.NewManager(appCfg.JWTSecret, appCfg.JWTCookieName, appCfg.JWTTokenTTL, secure, logger)
	if err != nil {
		logger.Error("auth manager init failed", zap.Error(err))
		return nil, err
	}

	db := deps.MongoDatabase

	adminStore := adminstore.New(db)
	pageStore := pagestore.New(db)
	sectionStore := sectionstore.New(db)
	contentStores := contentstore.NewStores(db)
	categoryStore := categorystore.New(db)
	projectStore := projectstore.New(db)
	blogStore := blogstore.New(db)
	blogCategoryStore := blogcategorystore.New(db)
	enquiryStore := enquirystore.New(db)

	authHandler := authapifeature.NewHandler(adminStore, authManager, logger)
	contentHandler := contentfeature.NewHandler(contentStores, projectStore, logger)
	pagesHandler := pagesapifeature.NewHandler(pageStore, sectionStore, logger)
	categoriesHandler := categoriesapifeature.NewHandler(categoryStore, logger)
	projectsHandler := projectsapifeature.NewHandler(projectStore, logger)
	blogsHandler := blogsapifeature.NewHandler(blogStore, blogCategoryStore, logger)
	enquiriesHandler := enquiriesapifeature.NewHandler(enquiryStore, logger)
	mediaHandler := mediaapifeature.NewHandler(deps.FileStorage, logger)

	r := chi.NewRouter()

	// Global middleware. CORS must be early in the chain so preflight
	// requests are answered before anything else runs.
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.CORSFromConfig(coreCfg))
	r.Use(middleware.SecurityHeadersFromConfig(coreCfg))

	// Health check endpoints for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))
	healthfeature.MountRootEndpoints(r, healthHandler)

	// Uploaded media (local storage only). S3 storage serves files from
	// the bucket/CDN directly, so no route is needed.
	if appCfg.StorageType == "local" || appCfg.StorageType == "" {
		r.Handle(appCfg.StorageLocalURL+"/*", fileserver.Handler(appCfg.StorageLocalURL, appCfg.StorageLocalPath))
	}

	// Public site API. Consumed by the marketing frontend from any origin,
	// so it gets permissive CORS instead of the configured allowlist.
	r.Group(func(gr chi.Router) {
		gr.Use(apicors.Middleware())
		gr.Mount("/api/content", contentfeature.PublicRoutes(contentHandler))
		gr.Mount("/api/pages", pagesapifeature.PublicRoutes(pagesHandler))
		gr.Mount("/api/categories", categoriesapifeature.PublicRoutes(categoriesHandler))
		gr.Mount("/api/projects", projectsapifeature.PublicRoutes(projectsHandler))
		gr.Mount("/api/blogs", blogsapifeature.PublicRoutes(blogsHandler))
		gr.Mount("/api/enquiries", enquiriesapifeature.PublicRoutes(enquiriesHandler))
	})

	// CSRF protection for the admin API. gorilla/csrf exempts safe methods
	// (GET, HEAD, OPTIONS); mutations must carry the token from
	// GET /api/cms/csrf in the X-CSRF-Token header. Login and logout are
	// path-exempt: login happens before any token can be fetched, and
	// logout is harmless to forge.
	csrfOpts := []csrf.Option{
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.CookieName("novaa_csrf"),
		csrf.FieldName("csrf_token"),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			logger.Warn("CSRF validation failed",
				zap.String("path", req.URL.Path),
				zap.String("method", req.Method),
				zap.String("reason", csrf.FailureReason(req).Error()),
			)
			jsonutil.Fail(w, http.StatusForbidden, "CSRF token invalid or missing")
		})),
	}
	if !secure {
		// In dev mode, trust localhost origins for CSRF validation.
		csrfOpts = append(csrfOpts, csrf.TrustedOrigins([]string{
			"localhost:8080",
			"localhost:3000",
			"127.0.0.1:8080",
			"127.0.0.1:3000",
		}))
	}
	csrfProtect := csrf.Protect([]byte(appCfg.CSRFKey), csrfOpts...)
	csrfMiddleware := func(next http.Handler) http.Handler {
		csrfHandler := csrfProtect(next)
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			switch req.URL.Path {
			case "/api/cms/auth/login", "/api/cms/auth/logout":
				next.ServeHTTP(w, req)
				return
			}
			csrfHandler.ServeHTTP(w, req)
		})
	}

	// Admin API
	r.Route("/api/cms", func(cr chi.Router) {
		cr.Use(csrfMiddleware)

		// Login/logout are public; /me inside is gated by the handler.
		cr.Mount("/auth", authapifeature.Routes(authHandler))

		// Google OAuth (only mount if configured)
		if appCfg.GoogleClientID != "" && appCfg.GoogleClientSecret != "" {
			oauthStateStore := oauthstate.New(db)
			googleHandler := authgooglefeature.NewHandler(
				adminStore,
				authManager,
				oauthStateStore,
				appCfg.GoogleClientID,
				appCfg.GoogleClientSecret,
				appCfg.BaseURL,
				appCfg.AdminLoginURL,
				appCfg.AdminPanelURL,
				logger,
			)
			cr.Mount("/auth/google", authgooglefeature.Routes(googleHandler))
			logger.Info("Google OAuth enabled", zap.String("redirect_url", appCfg.BaseURL+"/api/cms/auth/google/callback"))
		}

		// Token endpoint for the admin frontend; must sit inside the CSRF
		// middleware so csrf.Token has a request token to return.
		cr.Get("/csrf", func(w http.ResponseWriter, req *http.Request) {
			jsonutil.OK(w, map[string]string{"csrf_token": csrf.Token(req)})
		})

		// Everything else requires a valid admin credential.
		cr.Group(func(ar chi.Router) {
			ar.Use(authManager.RequireAdmin(adminStore))
			ar.Mount("/content", contentfeature.AdminRoutes(contentHandler))
			ar.Mount("/pages", pagesapifeature.AdminRoutes(pagesHandler))
			ar.Mount("/sections", pagesapifeature.SectionRoutes(pagesHandler))
			ar.Mount("/categories", categoriesapifeature.AdminRoutes(categoriesHandler))
			ar.Mount("/projects", projectsapifeature.AdminRoutes(projectsHandler))
			ar.Mount("/blogs", blogsapifeature.AdminRoutes(blogsHandler))
			ar.Mount("/enquiries", enquiriesapifeature.AdminRoutes(enquiriesHandler))
			ar.Mount("/media", mediaapifeature.Routes(mediaHandler))
		})
	})

	// JSON 404 for unmatched routes
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		jsonutil.NotFound(w, "not found")
	})

	return r, nil
}
