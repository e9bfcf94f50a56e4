package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/DogDaycare_Go/internal/daycare"
	"github.com/osse101/DogDaycare_Go/internal/domain"
	"github.com/osse101/DogDaycare_Go/internal/logger"
)

// CandidateCache remembers the hiring candidates shown to clients so a
// hire request can name one by id after the service rolled a new one.
type CandidateCache struct {
	lru *expirable.LRU[string, domain.Worker]
}

// NewCandidateCache creates a cache holding up to size candidates for ttl
func NewCandidateCache(size int, ttl time.Duration) *CandidateCache {
	return &CandidateCache{lru: expirable.NewLRU[string, domain.Worker](size, nil, ttl)}
}

// Remember stores a shown candidate
func (c *CandidateCache) Remember(w domain.Worker) {
	c.lru.Add(w.ID, w)
}

// Lookup returns a previously shown candidate
func (c *CandidateCache) Lookup(id string) (domain.Worker, bool) {
	return c.lru.Get(id)
}

// Forget drops a candidate once hired
func (c *CandidateCache) Forget(id string) {
	c.lru.Remove(id)
}

// ShopResponse lists everything purchasable right now
type ShopResponse struct {
	Money     int              `json:"money"`
	FeedCost  int              `json:"feed_cost"`
	SlotCost  int              `json:"slot_cost"`
	Upgrades  []domain.Upgrade `json:"upgrades"`
	Candidate domain.Worker    `json:"candidate"`
}

// BuyUpgradeRequest names the upgrade to buy
type BuyUpgradeRequest struct {
	Key domain.UpgradeKey `json:"key" validate:"required,oneof=premiumFood fancyToy comfyBed"`
}

// HireWorkerRequest names a candidate returned by the shop listing
type HireWorkerRequest struct {
	CandidateID string `json:"candidate_id" validate:"required,max=64"`
}

// HandleGetShop lists upgrades, costs and the current hiring candidate
// @Summary Get shop
// @Tags shop
// @Produce json
// @Success 200 {object} ShopResponse
// @Router /api/v1/shop [get]
func HandleGetShop(svc daycare.Service, candidates *CandidateCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		candidate := svc.Candidate()
		candidates.Remember(candidate)

		respondJSON(w, http.StatusOK, ShopResponse{
			Money:     svc.Snapshot().Money,
			FeedCost:  svc.FeedCost(),
			SlotCost:  svc.SlotCost(),
			Upgrades:  svc.UpgradeCatalog(),
			Candidate: candidate,
		})
	}
}

// HandleBuyUpgrade purchases a one-time upgrade
// @Summary Buy upgrade
// @Tags shop
// @Accept json
// @Produce json
// @Param request body BuyUpgradeRequest true "Upgrade key"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 402 {object} ErrorResponse "Not enough money"
// @Failure 409 {object} ErrorResponse "Already owned"
// @Router /api/v1/shop/upgrades [post]
func HandleBuyUpgrade(svc daycare.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BuyUpgradeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Buy upgrade"); err != nil {
			return
		}

		if err := svc.BuyUpgrade(r.Context(), req.Key); err != nil {
			respondServiceError(w, r, "Buy upgrade", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Message: MsgUpgradePurchased, Data: svc.Snapshot()})
	}
}

// HandleBuySlot purchases one more kennel
// @Summary Buy kennel slot
// @Tags shop
// @Produce json
// @Success 200 {object} DataResponse
// @Failure 402 {object} ErrorResponse "Not enough money"
// @Router /api/v1/shop/slots [post]
func HandleBuySlot(svc daycare.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.BuySlot(r.Context()); err != nil {
			respondServiceError(w, r, "Buy slot", err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Message: MsgSlotPurchased, Data: svc.Snapshot()})
	}
}

// HandleHireWorker hires a candidate previously listed by the shop
// @Summary Hire worker
// @Tags shop
// @Accept json
// @Produce json
// @Param request body HireWorkerRequest true "Candidate id"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 402 {object} ErrorResponse "Not enough money"
// @Failure 404 {object} ErrorResponse "Unknown candidate"
// @Router /api/v1/shop/workers [post]
func HandleHireWorker(svc daycare.Service, candidates *CandidateCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req HireWorkerRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Hire worker"); err != nil {
			return
		}

		candidate, ok := candidates.Lookup(req.CandidateID)
		if !ok {
			if current := svc.Candidate(); current.ID == req.CandidateID {
				candidate, ok = current, true
			}
		}
		if !ok {
			respondServiceError(w, r, "Hire worker", fmt.Errorf("%w: %s", domain.ErrCandidateNotFound, req.CandidateID))
			return
		}

		if err := svc.HireWorker(r.Context(), candidate); err != nil {
			respondServiceError(w, r, "Hire worker", err)
			return
		}
		candidates.Forget(candidate.ID)

		logger.FromContext(r.Context()).Info(MsgWorkerHired, "worker_id", candidate.ID, "name", candidate.Name)
		respondJSON(w, http.StatusOK, DataResponse{Message: MsgWorkerHired, Data: svc.Snapshot()})
	}
}
