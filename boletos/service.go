package boletos

import (
	"context"
	"time"

	encoreauth "encore.dev/beta/auth"
	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"encore.dev/storage/sqldb"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"encore.app/boletos/business/boleto"
	"encore.app/boletos/business/delivery"
	"encore.app/boletos/calendar"
	"encore.app/boletos/events"
	"encore.app/boletos/extract"
	"encore.app/boletos/model"
	"encore.app/boletos/push"
	"encore.app/boletos/scheduler"
	"encore.app/boletos/store"
	wf "encore.app/boletos/workflow"
)

var boletoFlowDB = sqldb.NewDatabase("boleto_flow", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

var secrets struct {
	VAPIDPublicKey            string
	VAPIDPrivateKey           string
	GeminiAPIKey              string
	GoogleCalendarCredentials string
	TemporalHostPort          string
}

const (
	taskQueue      = "boleto-flow"
	pushSubscriber = "mailto:contato@boletoflow.com"
)

// running is the initialized service instance, used by package-level cron
// endpoints.
var running *Service

//encore:service
type Service struct {
	business boleto.Business
	delivery delivery.Business
	temporal client.Client
	worker   worker.Worker

	scheduler *scheduler.Scheduler
	sync      *syncRegistry
}

func initService() (*Service, error) {
	pgxdb := sqldb.Driver(boletoFlowDB)

	rlog.Info("Initializing store")
	repo := store.NewStore(pgxdb)

	var cal boleto.CalendarMirror
	if secrets.GoogleCalendarCredentials != "" {
		g, err := calendar.NewGoogle(context.Background(), secrets.GoogleCalendarCredentials)
		if err != nil {
			rlog.Error("calendar mirror disabled", "error", err)
		} else {
			cal = g
		}
	}

	var ext boleto.Extractor
	if secrets.GeminiAPIKey != "" {
		g, err := extract.NewGemini(context.Background(), secrets.GeminiAPIKey)
		if err != nil {
			rlog.Error("boleto extraction disabled", "error", err)
		} else {
			ext = g
		}
	}

	biz := boleto.NewBusiness(repo.Bills, repo.Activity, cal, ext, events.PublishChange)

	sender := push.NewWebPush(pushSubscriber, secrets.VAPIDPublicKey, secrets.VAPIDPrivateKey)
	del := delivery.NewBusiness(repo.Bills, repo.Subscriptions, sender)

	rlog.Info("Connecting to Temporal", "task_queue", taskQueue)
	tc, err := client.Dial(client.Options{HostPort: secrets.TemporalHostPort})
	if err != nil {
		rlog.Error("failed to connect to temporal", "error", err)
		return nil, err
	}

	wf.SetActivityDependencies(del)
	w := worker.New(tc, taskQueue, worker.Options{})
	w.RegisterWorkflow(wf.DuePush)
	w.RegisterActivity(wf.DispatchDuePushActivity)
	if err := w.Start(); err != nil {
		rlog.Error("failed to start temporal worker", "error", err)
		return nil, err
	}

	fetchDueToday := func(ctx context.Context, today string) ([]*model.Boleto, error) {
		day, err := time.Parse(model.DueDateLayout, today)
		if err != nil {
			return nil, err
		}
		rows, err := repo.Bills.ListDueToday(ctx, pgtype.Date{Time: day, Valid: true})
		if err != nil {
			return nil, err
		}
		out := make([]*model.Boleto, len(rows))
		for i, r := range rows {
			out[i] = boleto.FromDB(r)
		}
		return out, nil
	}

	sched := scheduler.New(fetchDueToday, topicNotifier{})
	sched.Start(context.Background())

	s := &Service{
		business:  biz,
		delivery:  del,
		temporal:  tc,
		worker:    w,
		scheduler: sched,
		sync:      newSyncRegistry(),
	}
	running = s
	return s, nil
}

// Shutdown releases every owned background task: the due-soon scan loop, the
// per-user realtime listeners, and the Temporal worker.
func (s *Service) Shutdown(force context.Context) {
	s.scheduler.Stop()
	s.sync.detachAll()
	s.worker.Stop()
	s.temporal.Close()
}

// currentOwner resolves the authenticated user for owner scoping.
func currentOwner() (uuid.UUID, error) {
	uid, ok := encoreauth.UserID()
	if !ok {
		return uuid.Nil, &errs.Error{Code: errs.Unauthenticated, Message: "authentication required"}
	}
	ownerID, err := uuid.Parse(string(uid))
	if err != nil {
		return uuid.Nil, &errs.Error{Code: errs.Unauthenticated, Message: "invalid user id"}
	}
	return ownerID, nil
}
