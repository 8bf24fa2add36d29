package cronjobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
)

// Sweeper периодически переводит подписки с прошедшей датой доставки на следующий цикл
type Sweeper struct {
	engine   *cron.Cron
	job      cron.Job
	sweeper  SubscriptionSweeper
	schedule string
	timeout  time.Duration
	loc      *time.Location
	now      func() time.Time
	logger   Logger
}

// NewSweeper создает задачу. Расписание schedule задается в часовом поясе магазина
func NewSweeper(sweeper SubscriptionSweeper, schedule string, timeout time.Duration, loc *time.Location, logger Logger) *Sweeper {
	s := &Sweeper{
		engine:   cron.New(cron.WithLocation(loc)),
		sweeper:  sweeper,
		schedule: schedule,
		timeout:  timeout,
		loc:      loc,
		now:      time.Now,
		logger:   logger,
	}
	// Новый проход не стартует, пока не завершился предыдущий
	s.job = cron.NewChain(cron.SkipIfStillRunning(cronLogger{logger})).Then(cron.FuncJob(s.Run))
	return s
}

// Start регистрирует задачу и запускает планировщик
func (s *Sweeper) Start() error {
	if _, err := s.engine.AddJob(s.schedule, s.job); err != nil {
		return fmt.Errorf("add sweep job %q: %w", s.schedule, err)
	}
	s.engine.Start()
	s.logger.Info("Subscription sweep scheduled: cron=%q, timeout=%s", s.schedule, s.timeout)
	return nil
}

// Run выполняет один проход, вызывается планировщиком
func (s *Sweeper) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	today := domain.DateOf(s.now(), s.loc)
	result, err := s.sweeper.SweepDue(ctx, today)
	if err != nil {
		s.logger.Error("Subscription sweep failed: today=%s, error=%v", today, err)
		return
	}
	if result.Failed > 0 {
		s.logger.Warn("Subscription sweep: %d subscriptions left for the next run", result.Failed)
	}
}

// Stop останавливает планировщик и ждет завершения текущего прохода
func (s *Sweeper) Stop() {
	ctx := s.engine.Stop()
	<-ctx.Done()
	s.logger.Info("Subscription sweep stopped")
}

// cronLogger адаптер Logger к cron.Logger
type cronLogger struct {
	log Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Info("cron: %s %v", msg, keysAndValues)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error("cron: %s: %v %v", msg, err, keysAndValues)
}
