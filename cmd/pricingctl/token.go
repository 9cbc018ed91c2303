package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"pricing/config"
	"pricing/internal/domain/entity"
	"pricing/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func runToken(out io.Writer, operator, roles string, ttl time.Duration) error {
	operatorID := uuid.New()
	if operator != "" {
		parsed, err := uuid.Parse(operator)
		if err != nil {
			return errors.Wrap(err, "invalid --operator")
		}
		operatorID = parsed
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	tokenSvc, err := auth.NewJWTService(cfg)
	if err != nil {
		return err
	}

	parsedRoles, err := parseRoles(roles)
	if err != nil {
		return err
	}

	token, err := tokenSvc.IssueToken(operatorID, parsedRoles.ToStrings(), ttl)
	if err != nil {
		return errors.Wrap(err, "failed to issue token")
	}

	fmt.Fprintf(out, "operator: %s\n", operatorID)
	fmt.Fprintf(out, "expires:  %s\n", time.Now().Add(ttl).UTC().Format(time.RFC3339))
	fmt.Fprintln(out, token)

	return nil
}

func parseRoles(raw string) (entity.Roles, error) {
	roles := make(entity.Roles, 0)
	for item := range strings.SplitSeq(raw, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		role := entity.Role(item)
		if !role.IsValid() {
			return nil, errors.Errorf("unknown role %q", item)
		}
		roles = append(roles, role)
	}

	return roles, nil
}
