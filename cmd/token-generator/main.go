// Command token-generator mints a bearer token for local testing of the
// conversion endpoint. It reads the same configuration sources as the server
// but only requires the auth settings.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/phrazzld/fxconvert-api/internal/config"
	"github.com/phrazzld/fxconvert-api/internal/domain"
	"github.com/phrazzld/fxconvert-api/internal/service/auth"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "token-generator: %v\n", err)
		os.Exit(1)
	}
}

// run parses args, loads configuration and writes a signed token to out.
func run(args []string, out io.Writer) error {
	flags := pflag.NewFlagSet("token-generator", pflag.ContinueOnError)
	roleName := flags.StringP("role", "r", string(domain.RoleCustomer), "role claim (CUSTOMER, SPONSOR or OWNER)")
	userFlag := flags.StringP("user", "u", "", "user ID claim; a random UUID when empty")
	header := flags.Bool("header", false, "print a complete Authorization header")
	if err := flags.Parse(args); err != nil {
		return err
	}

	role, err := domain.ParseRole(*roleName)
	if err != nil {
		return err
	}

	userID := uuid.New()
	if *userFlag != "" {
		userID, err = uuid.Parse(*userFlag)
		if err != nil {
			return fmt.Errorf("invalid user ID %q: %w", *userFlag, err)
		}
	}

	authCfg, err := config.LoadAuth()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	return writeToken(context.Background(), *authCfg, userID, role, *header, out)
}

func writeToken(
	ctx context.Context,
	cfg config.AuthConfig,
	userID uuid.UUID,
	role domain.Role,
	header bool,
	out io.Writer,
) error {
	jwtService, err := auth.NewJWTService(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize JWT service: %w", err)
	}

	token, err := jwtService.GenerateToken(ctx, userID, role)
	if err != nil {
		return err
	}

	if header {
		_, err = fmt.Fprintf(out, "Authorization: Bearer %s\n", token)
	} else {
		_, err = fmt.Fprintln(out, token)
	}
	return err
}
