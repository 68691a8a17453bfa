package infra

import (
	"github.com/secmon-lab/vibecheck/pkg/domain/interfaces"
)

type Clients struct {
	github interfaces.GitHub
	llm    interfaces.LLM
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHub {
	return x.github
}
func (x *Clients) LLM() interfaces.LLM {
	return x.llm
}

func WithGitHub(client interfaces.GitHub) Option {
	return func(x *Clients) {
		x.github = client
	}
}

func WithLLM(client interfaces.LLM) Option {
	return func(x *Clients) {
		x.llm = client
	}
}
