package handler

import (
	"encoding/json"

	"lookupdesk/internal/lookup/models"
)

// responsePresenter keeps the state trail of one request for the request log.
type responsePresenter struct {
	renders []models.Render
}

func (p *responsePresenter) RenderLoading(domain models.Domain) {
	p.record(models.Render{Kind: models.RenderLoading, Domain: domain})
}

func (p *responsePresenter) RenderResult(domain models.Domain, payload json.RawMessage) {
	p.record(models.Render{Kind: models.RenderResult, Domain: domain, Payload: payload})
}

func (p *responsePresenter) RenderError(domain models.Domain, message string) {
	p.record(models.Render{Kind: models.RenderError, Domain: domain, Message: message})
}

func (p *responsePresenter) record(r models.Render) {
	p.renders = append(p.renders, r)
}

func (p *responsePresenter) states() []string {
	states := make([]string, 0, len(p.renders))
	for _, r := range p.renders {
		states = append(states, string(r.Kind))
	}
	return states
}
