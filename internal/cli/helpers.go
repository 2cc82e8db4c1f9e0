package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/ArcLab_Go/internal/catalog"
	"github.com/osse101/ArcLab_Go/internal/config"
	"github.com/osse101/ArcLab_Go/internal/database"
	"github.com/osse101/ArcLab_Go/internal/domain"
)

// parseRequests turns "name=amount" arguments into plan requests. Names
// match items case-insensitively.
func parseRequests(items []domain.Item, args []string) ([]domain.DesiredRequest, error) {
	ids := make(map[string]int, len(items))
	names := make([]string, 0, len(items))
	for _, item := range items {
		ids[strings.ToLower(item.Name)] = item.ID
		names = append(names, item.Name)
	}

	requests := make([]domain.DesiredRequest, 0, len(args))
	for _, arg := range args {
		name, amountStr, ok := strings.Cut(arg, requestSeparator)
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf(errMsgBadRequestFmt, arg)
		}

		amount, err := strconv.Atoi(strings.TrimSpace(amountStr))
		if err != nil {
			return nil, fmt.Errorf(errMsgBadAmountFmt, arg, err)
		}

		id, found := ids[strings.ToLower(name)]
		if !found {
			hint := ""
			if s := catalog.Suggest(name, names); s != "" {
				hint = fmt.Sprintf(errMsgDidYouMeanFmt, s)
			}
			return nil, fmt.Errorf(errMsgUnknownItemFmt, name, hint)
		}

		requests = append(requests, domain.DesiredRequest{ItemID: id, Amount: amount})
	}
	return requests, nil
}

// connect opens a pool from the environment configuration
func connect(ctx context.Context) (*pgxpool.Pool, error) {
	cfg, err := config.LoadForTools()
	if err != nil {
		return nil, fmt.Errorf(errMsgLoadConfig, err)
	}

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.PoolOptions{MaxConns: 2})
	if err != nil {
		return nil, fmt.Errorf(errMsgConnect, err)
	}
	return pool, nil
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
