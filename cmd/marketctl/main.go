// Command marketctl runs operator tasks against the marketplace database.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"rewear.backend/internal/config"
	"rewear.backend/internal/domain/entities"
	domainrepo "rewear.backend/internal/domain/repositories"
	"rewear.backend/internal/infrastructure/datasources"
	"rewear.backend/internal/infrastructure/models"
	"rewear.backend/internal/infrastructure/repositories"
	"rewear.backend/internal/usecases"
	"rewear.backend/pkg/crypto"
)

type marketRuntime interface {
	Migrate(ctx context.Context) error
	CreateAdmin(ctx context.Context, input *entities.CreateAdminInput) (*entities.User, error)
}

type marketDeps struct {
	loadEnv func() error
	loadCfg func() *config.Config
	prepare func(cfg *config.Config) (marketRuntime, io.Closer, error)
}

type marketRuntimeImpl struct {
	db           *gorm.DB
	categoryRepo domainrepo.CategoryRepository
	auth         *usecases.AuthUsecase
}

// Migrate creates or alters every table, then makes sure the fallback
// category exists.
func (r marketRuntimeImpl) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	if _, err := r.categoryRepo.FirstOrCreateByName(ctx, entities.UncategorizedName, entities.UncategorizedDescription); err != nil {
		return fmt.Errorf("seed fallback category: %w", err)
	}
	return nil
}

func (r marketRuntimeImpl) CreateAdmin(ctx context.Context, input *entities.CreateAdminInput) (*entities.User, error) {
	return r.auth.CreateAdmin(ctx, input)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func defaultMarketDeps() marketDeps {
	return marketDeps{
		loadEnv: func() error { return godotenv.Load() },
		loadCfg: config.Load,
		prepare: prepareRuntime,
	}
}

func prepareRuntime(cfg *config.Config) (marketRuntime, io.Closer, error) {
	if err := datasources.Check(cfg.Database); err != nil {
		return nil, nil, err
	}
	db, err := datasources.Open(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect db: %w", err)
	}
	// Category deletes reassign items themselves; no FK cascades.
	db.Config.DisableForeignKeyConstraintWhenMigrating = true

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init sql db: %w", err)
	}

	userRepo := repositories.NewUserRepository(db)
	// CreateAdmin touches neither tokens nor assets.
	auth := usecases.NewAuthUsecase(userRepo, nil, nil, nil, 0)

	return marketRuntimeImpl{
		db:           db,
		categoryRepo: repositories.NewCategoryRepository(db),
		auth:         auth,
	}, sqlDB, nil
}

// withRuntime loads configuration and opens the runtime for one command.
func (d marketDeps) withRuntime(fn func(marketRuntime) error) error {
	if err := d.loadEnv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	rt, closer, err := d.prepare(d.loadCfg())
	if err != nil {
		return err
	}
	if closer == nil {
		closer = nopCloser{}
	}
	defer closer.Close()
	return fn(rt)
}

func newRootCmd(deps marketDeps) *cobra.Command {
	root := &cobra.Command{
		Use:           "marketctl",
		Short:         "Operator tasks for the ReWear marketplace",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newMigrateCmd(deps),
		newCreateAdminCmd(deps),
		newHashPasswordCmd(),
	)
	return root
}

func newMigrateCmd(deps marketDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update database tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return deps.withRuntime(func(rt marketRuntime) error {
				if err := rt.Migrate(cmd.Context()); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Migration complete")
				return nil
			})
		},
	}
}

func newCreateAdminCmd(deps marketDeps) *cobra.Command {
	var input entities.CreateAdminInput

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an active administrator account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return deps.withRuntime(func(rt marketRuntime) error {
				user, err := rt.CreateAdmin(cmd.Context(), &input)
				if err != nil {
					return fmt.Errorf("failed creating admin: %w", err)
				}
				out := cmd.OutOrStdout()
				_, _ = fmt.Fprintln(out, "Created administrator")
				_, _ = fmt.Fprintf(out, "user_id=%s\n", user.ID)
				_, _ = fmt.Fprintf(out, "email=%s\n", user.Email)
				return nil
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&input.Email, "email", "", "admin email (required)")
	flags.StringVar(&input.Password, "password", "", "admin password (required)")
	flags.StringVar(&input.FirstName, "first-name", "Admin", "first name")
	flags.StringVar(&input.LastName, "last-name", "User", "last name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newHashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Print a bcrypt hash for a password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := crypto.HashPassword(args[0])
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}

func main() {
	if err := newRootCmd(defaultMarketDeps()).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
