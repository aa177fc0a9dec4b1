package infra

import (
	"github.com/m-mizutani/octosched/pkg/domain/interfaces"
)

// Clients bundles the external collaborators of the use case layer. A nil BigQuery disables the
// sync audit sink and a nil SchedulePolicy falls back to the default cadence.
type Clients struct {
	githubApp  interfaces.GitHubApp
	repository interfaces.InstallationRepository
	scheduler  interfaces.JobScheduler
	policy     interfaces.SchedulePolicy
	bqClient   interfaces.BigQuery
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHubApp() interfaces.GitHubApp {
	return x.githubApp
}
func (x *Clients) Repository() interfaces.InstallationRepository {
	return x.repository
}
func (x *Clients) Scheduler() interfaces.JobScheduler {
	return x.scheduler
}
func (x *Clients) SchedulePolicy() interfaces.SchedulePolicy {
	return x.policy
}
func (x *Clients) BigQuery() interfaces.BigQuery {
	return x.bqClient
}

func WithGitHubApp(client interfaces.GitHubApp) Option {
	return func(x *Clients) {
		x.githubApp = client
	}
}

func WithRepository(repo interfaces.InstallationRepository) Option {
	return func(x *Clients) {
		x.repository = repo
	}
}

func WithScheduler(scheduler interfaces.JobScheduler) Option {
	return func(x *Clients) {
		x.scheduler = scheduler
	}
}

func WithSchedulePolicy(policy interfaces.SchedulePolicy) Option {
	return func(x *Clients) {
		x.policy = policy
	}
}

func WithBigQuery(client interfaces.BigQuery) Option {
	return func(x *Clients) {
		x.bqClient = client
	}
}
