package service

import (
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/harbor-networks/ledger-server/internal/fault"
)

const proposalTTL = 10 * time.Minute

// Proposal is a transfer awaiting explicit confirmation. It lives only in
// memory: until confirmed it has no side effects and can be discarded freely.
type Proposal struct {
	ID        uuid.UUID
	Request   TransferRequest
	CreatedAt time.Time
	ExpiresAt time.Time
}

type proposalStore struct {
	mu        sync.Mutex
	proposals map[uuid.UUID]*Proposal
}

func newProposalStore() *proposalStore {
	return &proposalStore{proposals: make(map[uuid.UUID]*Proposal)}
}

func (p *proposalStore) add(req TransferRequest) (*Proposal, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	proposal := &Proposal{
		ID:        id,
		Request:   req,
		CreatedAt: now,
		ExpiresAt: now.Add(proposalTTL),
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.prune(now)
	p.proposals[id] = proposal
	return proposal, nil
}

// take removes and returns the proposal. A proposal confirms at most once.
func (p *proposalStore) take(id uuid.UUID) (*Proposal, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	proposal, ok := p.proposals[id]
	if !ok {
		return nil, fault.NotFoundf("transfer proposal not found")
	}
	delete(p.proposals, id)

	if time.Now().After(proposal.ExpiresAt) {
		return nil, fault.Validationf("transfer proposal expired")
	}
	return proposal, nil
}

// prune drops expired proposals. Caller holds the lock.
func (p *proposalStore) prune(now time.Time) {
	for id, proposal := range p.proposals {
		if now.After(proposal.ExpiresAt) {
			delete(p.proposals, id)
		}
	}
}
