package cli

import (
	"fmt"

	"github.com/martijn/inkwell/internal/core/repository"
	"github.com/martijn/inkwell/internal/core/service"
	"github.com/martijn/inkwell/internal/infrastructure/sqlite"
	"github.com/martijn/inkwell/internal/logger"
	"github.com/martijn/inkwell/pkg/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "inkwell",
	Short: "Inkwell - a small server-rendered blog",
	Long: `Inkwell is a server-rendered blogging application.

It provides:
- A public listing and detail view for blog posts
- Create, edit and delete flows for signed-in authors
- Cookie-based sessions with registration and login
- Separate SQLite stores for posts and users`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is /etc/inkwell/config.yml)")
}

// Services holds all initialized services
type Services struct {
	PostDB      *sqlite.DB
	UserDB      *sqlite.DB
	PostRepo    repository.PostRepository
	UserRepo    repository.UserRepository
	AuthService *service.AuthService
	PostService *service.PostService
	Log         *logger.Logger
}

// initServices opens both stores and wires the service graph
func initServices() (*Services, error) {
	postDB, err := sqlite.NewPostDB(cfg.PostDBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open post store: %w", err)
	}

	userDB, err := sqlite.NewUserDB(cfg.UserDBPath)
	if err != nil {
		postDB.Close()
		return nil, fmt.Errorf("failed to open user store: %w", err)
	}

	postRepo := sqlite.NewPostRepository(postDB)
	userRepo := sqlite.NewUserRepository(userDB)

	return &Services{
		PostDB:      postDB,
		UserDB:      userDB,
		PostRepo:    postRepo,
		UserRepo:    userRepo,
		AuthService: service.NewAuthService(userRepo, cfg.SessionSecretKey),
		PostService: service.NewPostService(postRepo, userRepo),
		Log:         logger.New(cfg.LogLevel),
	}, nil
}

// Close closes both stores
func (s *Services) Close() {
	if s.PostDB != nil {
		s.PostDB.Close()
	}
	if s.UserDB != nil {
		s.UserDB.Close()
	}
}
