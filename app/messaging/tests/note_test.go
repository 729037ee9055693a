package tests

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/spsquad/sps-api/app/messaging/consumers/v1/notes"
	"github.com/spsquad/sps-api/business/v1/note"
	"github.com/spsquad/sps-api/persistence/v1/file"
	"github.com/spsquad/sps-api/persistence/v1/schema"
	"github.com/spsquad/sps-api/platform/env"
	"github.com/spsquad/sps-api/platform/logger"
	"github.com/spsquad/sps-api/sys"
	"gocloud.dev/pubsub"
	"gocloud.dev/pubsub/mempubsub"

	_ "github.com/proullon/ramsql/driver"
)

type NoteTests struct {
	topic *pubsub.Topic
}

func TestNote(t *testing.T) {
	log, err := logger.New("SPS-Messaging-Tests")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	// =======================================================================================================
	// Mocks

	// miniredis
	s := miniredis.RunT(t)

	// =======================================================================================================
	// Setup configs
	sys.Configs.Database.ConnectionURL = env.OrDefault(log, "DATABASE_CONNECTION_URL", "localhost:3306")
	sys.Configs.Database.PingTimeout = env.DurationDefault(log, "DATABASE_PING_TIMEOUT", "2s")
	sys.Configs.Database.OperationTimeout = env.DurationDefault(log, "DATABASE_OPERATION_TIMEOUT", "5s")
	sys.Configs.Cache.ConnectionURL = s.Addr()
	sys.Configs.Cache.User = env.OrDefault(log, "CACHE_USER", "")
	sys.Configs.Cache.Pass = env.OrDefault(log, "CACHE_PASS", "")
	sys.Configs.Cache.PingTimeout = env.DurationDefault(log, "CACHE_PING_TIMEOUT", "2s")
	sys.Configs.Cache.OperationTimeout = env.DurationDefault(log, "CACHE_OPERATION_TIMEOUT", "10s")
	sys.Configs.Cache.CacheTTL = env.DurationDefault(log, "CACHE_CACHE_TTL", "24h")

	// =======================================================================================================
	// Setup resources

	// logger
	sys.R.Log = log

	// ramsql standing in for mysql
	var db *sql.DB
	if err := func() error {
		ramDb, err := sql.Open("ramsql", "NoteMessagingTest")
		if err != nil {
			return fmt.Errorf("error to connecto to database: %w", err)
		}
		dbCtx, dbCancel := context.WithTimeout(context.Background(), sys.Configs.Database.PingTimeout)
		defer dbCancel()
		if err := ramDb.PingContext(dbCtx); err != nil {
			return fmt.Errorf("could not connect to database: %w", err)
		}
		db = ramDb
		return nil
	}(); err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = db.Close()
	}()
	sys.R.Database = db

	// redis
	var rdb *redis.Client
	if err := func() error {
		rdb = redis.NewClient(&redis.Options{
			Addr:     sys.Configs.Cache.ConnectionURL,
			Username: sys.Configs.Cache.User,
			Password: sys.Configs.Cache.Pass,
		})
		rdsCtx, rdsCancel := context.WithTimeout(context.Background(), sys.Configs.Cache.PingTimeout)
		defer rdsCancel()
		if err := rdb.Ping(rdsCtx).Err(); err != nil {
			return fmt.Errorf("could not connect to redis: %w", err)
		}
		return nil
	}(); err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = rdb.Close()
	}()
	sys.R.Cache = rdb

	// static file store over a temp dir
	files, err := file.NewStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = files.Close()
	}()
	sys.R.Files = files

	// =======================================================================================================
	// Database setup

	if err := schema.Create(context.Background()); err != nil {
		t.Fatalf("sql.Exec: Error: %s\n", err)
	}
	defer schema.Drop(context.Background())

	if _, err := sys.R.Database.Exec(`INSERT INTO tblAccount (username) VALUES ('operator')`); err != nil {
		t.Fatalf("sql.Exec: Error: %s\n", err)
	}

	// =======================================================================================================
	// Messaging configuration

	topic := mempubsub.NewTopic()
	defer func() {
		_ = topic.Shutdown(context.Background())
	}()
	subscription := mempubsub.NewSubscription(topic, 1*time.Second)

	defer func() {
		stdCtx, stdCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer stdCancel()

		_ = subscription.Shutdown(stdCtx)
	}()

	withCancel, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	go func() {
		if err := notes.Consume(withCancel, subscription, 1); err != nil {
			t.Error("listener error: ", err)
		}
	}()

	// =======================================================================================================
	// Run tests

	noteTests := NoteTests{topic: topic}

	noteTests.testCreateSuccess(t)
}

func (nt *NoteTests) testCreateSuccess(t *testing.T) {
	event := note.Event{
		Type: "create",
		Data: note.CreateEvent{
			AccountId: 1,
			Title:     "incident-report",
			Content:   "radio silence at 0200",
		},
	}

	marshal, err := json.Marshal(event)
	if err != nil {
		t.Fatal("Test testCreateSuccess: failed to build create request body")
	}

	if err := nt.topic.Send(context.Background(), &pubsub.Message{
		Body: marshal,
	}); err != nil {
		t.Fatal("Test testCreateSuccess: failed to post message to topic: ", err)
	}

	time.Sleep(time.Second * 5)

	row := sys.R.Database.QueryRow("SELECT note_id, account_id, title, url FROM tblNotes WHERE note_id = 1")
	if row.Err() != nil {
		t.Fatal("Test testCreateSuccess: failed to get inserted note: ", row.Err())
	}

	var found struct {
		NoteId    uint64
		AccountId uint64
		Title     string
		Url       string
	}
	if err := row.Scan(&found.NoteId, &found.AccountId, &found.Title, &found.Url); err != nil {
		t.Fatalf("error parsing db data: %s", err)
	}

	if found.AccountId != 1 {
		t.Fatalf("Test testCreateSuccess: should have recorded account 1 as owner: %+v", found)
	}
	if found.Title != "incident-report" {
		t.Fatalf("Test testCreateSuccess: should have received \"incident-report\" as title: %+v", found)
	}

	content, err := sys.R.Files.Read(context.Background(), file.Key(found.Url))
	if err != nil {
		t.Fatalf("Test testCreateSuccess: should be able to read the note blob: %s", err)
	}
	if string(content) != "radio silence at 0200" {
		t.Fatalf("Test testCreateSuccess: blob content mismatch: %q", string(content))
	}
}
