package protocol

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/spsquad/sps-api/sys"
)

// FindAll returns every protocol row. The table is read-only in
// production, so results are served cache-aside from redis; cache failures
// are logged and the database answers instead.
func FindAll(ctx context.Context) ([]Protocol, error) {
	logger := sys.R.Log
	cache := sys.R.Cache
	db := sys.R.Database

	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()
	get, err := cache.Get(tcCtx, protocolsKey).Result()
	if err != nil && err != redis.Nil {
		logger.Error("failure to get protocols from cache: ", err.Error())
	}
	if get != "" {
		var protocols []Protocol
		if err := json.Unmarshal([]byte(get), &protocols); err != nil {
			logger.Errorf("error parsing cached response for key %s: %s", protocolsKey, err)
		} else {
			return protocols, nil
		}
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "SELECT protocol_id, title, content FROM tblProtocol")
	if err != nil {
		return nil, fmt.Errorf("failed to prepare find stmt: %w", err)
	}
	rows, err := stmt.QueryContext(dbCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to query find stmt: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var protocols []Protocol
	for rows.Next() {
		var p Protocol
		if err := rows.Scan(&p.ProtocolId, &p.Title, &p.Content); err != nil {
			return nil, fmt.Errorf("error parsing db data: %w", err)
		}
		protocols = append(protocols, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate find stmt: %w", err)
	}

	// an empty set is never cached, a later seed would be shadowed by it
	if len(protocols) > 0 {
		if data, err := json.Marshal(protocols); err != nil {
			logger.Errorf("error parsing data to cache for key %s: %s", protocolsKey, err)
		} else {
			tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
			defer tcCancel()

			if err := cache.Set(tcCtx, protocolsKey, string(data), sys.Configs.Cache.CacheTTL).Err(); err != nil {
				logger.Error("failure to set protocols into cache: ", err.Error())
			}
		}
	}

	return protocols, nil
}
