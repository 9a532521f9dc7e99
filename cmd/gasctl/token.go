package main

import (
	"fmt"
	"time"

	"gasradar/config"
	"gasradar/internal/domain/entity"
	"gasradar/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func tokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "Mint an access token for local testing",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "user",
				Usage: "User ID (random when empty)",
			},
			&cli.StringSliceFlag{
				Name:  "role",
				Usage: "Role to grant, repeatable",
				Value: cli.NewStringSlice(string(entity.RoleUser)),
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}

			userID := uuid.New()
			if raw := c.String("user"); raw != "" {
				if userID, err = uuid.Parse(raw); err != nil {
					return errors.Wrap(err, "parse user id")
				}
			}

			roles, err := entity.ParseRoles(c.StringSlice("role"))
			if err != nil {
				return err
			}

			tokenSvc, err := auth.NewJWTService(cfg)
			if err != nil {
				return err
			}

			token, err := tokenSvc.GenerateAccessToken(userID, roles.Strings())
			if err != nil {
				return err
			}

			claims, err := tokenSvc.ValidateAccessToken(token)
			if err != nil {
				return err
			}

			fmt.Fprintf(c.App.Writer, "user:    %s\nroles:   %v\nexpires: %s\n%s\n",
				claims.UserID, claims.Roles, claims.ExpiresAt.Format(time.RFC3339), token)

			return nil
		},
	}
}
