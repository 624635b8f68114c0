package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/sgi-guatemart/internal/application/dto"
	"github.com/jhoicas/sgi-guatemart/internal/application/usecase"
	"github.com/jhoicas/sgi-guatemart/internal/domain"
	"github.com/jhoicas/sgi-guatemart/internal/domain/rbac"
	"github.com/jhoicas/sgi-guatemart/internal/infrastructure/postgres"
	"github.com/jhoicas/sgi-guatemart/pkg/password"
)

var (
	bootstrapAdminCmd = &cobra.Command{
		Use:   "bootstrap-admin",
		Short: "Crea el primer usuario Administrador",
		RunE:  runBootstrapAdmin,
	}
	adminUsername string
	adminPassword string
	adminFullName string
	adminEmail    string

	hashPasswordCmd = &cobra.Command{
		Use:   "hash-password [contraseña]",
		Short: "Imprime el hash bcrypt de una contraseña (lee stdin si no se pasa argumento)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runHashPassword,
	}
)

func init() {
	f := bootstrapAdminCmd.Flags()
	f.StringVar(&adminUsername, "username", "admin", "nombre de usuario")
	f.StringVar(&adminPassword, "password", "", "contraseña (mínimo 6 caracteres)")
	f.StringVar(&adminFullName, "nombre", "Administrador General", "nombre completo")
	f.StringVar(&adminEmail, "email", "admin@guatemart.com", "correo electrónico")
	_ = bootstrapAdminCmd.MarkFlagRequired("password")
}

func runBootstrapAdmin(_ *cobra.Command, _ []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	ctx := context.Background()
	pool, err := postgres.Open(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer pool.Close()

	db := postgres.NewDatabase(pool)
	users := usecase.NewUserUseCase(postgres.NewUserRepository(db), postgres.NewCatalogRepository(db))

	roles, err := users.Roles(ctx)
	if err != nil {
		return err
	}
	var roleID int64
	for _, r := range roles {
		if r.Name == rbac.RoleNameAdministrator {
			roleID = r.ID
		}
	}
	if roleID == 0 {
		return fmt.Errorf("no existe el rol %q: ejecute migrate primero", rbac.RoleNameAdministrator)
	}

	user, err := users.Create(ctx, dto.UserCreateForm{
		Username:        adminUsername,
		Password:        adminPassword,
		PasswordConfirm: adminPassword,
		FullName:        adminFullName,
		Email:           adminEmail,
		RoleID:          fmt.Sprint(roleID),
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return errors.New(domain.ValidationMessage(err, "datos inválidos"))
		}
		return err
	}
	log.Info().Int64("id", user.ID).Str("user", user.Username).Msg("administrador creado")
	return nil
}

func runHashPassword(cmd *cobra.Command, args []string) error {
	plain := ""
	if len(args) == 1 {
		plain = args[0]
	} else {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("leer contraseña: %w", err)
		}
		plain = strings.TrimRight(line, "\r\n")
	}
	if plain == "" {
		return errors.New("la contraseña no puede estar vacía")
	}
	hash, err := password.Hash(plain)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), hash)
	return nil
}
