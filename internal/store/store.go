// Package store owns the mutable application state: products, bills,
// quotations, the derived alert set, and settings. It is the single point
// of mutation; every other component works over snapshots it hands out.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/saral-app/saral/internal/billing"
	"github.com/saral-app/saral/internal/catalog"
	"github.com/saral-app/saral/internal/docnum"
	"github.com/saral-app/saral/internal/inventory"
	"github.com/saral-app/saral/internal/quotation"
	"github.com/saral-app/saral/internal/shared"
)

// PaymentSettings configures the payee shown on generated bills.
type PaymentSettings struct {
	PayeeName      string `json:"payee_name"`
	Identifier     string `json:"identifier"`
	IdentifierType string `json:"identifier_type"` // upi or mobile
}

// Settings holds user-tunable presentation state.
type Settings struct {
	BillTheme string           `json:"bill_theme"`
	Payment   *PaymentSettings `json:"payment,omitempty"`
}

// Bumper invalidates derived-value caches after a mutation. Satisfied by
// *analytics.Cache; may be nil.
type Bumper interface {
	Bump(ctx context.Context) error
}

// Config wires the store's collaborators.
type Config struct {
	Logger    *slog.Logger
	Ledger    *inventory.Ledger
	Snapshots SnapshotStore // nil disables persistence
	Cache     Bumper        // nil disables cache invalidation
	Now       func() time.Time
}

// Store is the process-wide state holder. All exported methods are safe
// for concurrent use; mutators commit their full effect under one lock so
// readers never observe a bill without its stock and alert updates.
type Store struct {
	mu        sync.RWMutex
	logger    *slog.Logger
	ledger    *inventory.Ledger
	snapshots SnapshotStore
	cache     Bumper
	now       func() time.Time
	seq       *docnum.Sequencer

	products   []catalog.Product
	bills      []billing.Bill
	quotations []quotation.Quotation
	alerts     []inventory.StockAlert
	settings   Settings
}

// New constructs an empty Store.
func New(cfg Config) *Store {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	ledger := cfg.Ledger
	if ledger == nil {
		ledger = inventory.NewLedger(inventory.StockPolicyAllow, inventory.OrphanPolicyIgnore, logger)
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Store{
		logger:     logger,
		ledger:     ledger,
		snapshots:  cfg.Snapshots,
		cache:      cfg.Cache,
		now:        now,
		seq:        docnum.NewSequencer(),
		products:   []catalog.Product{},
		bills:      []billing.Bill{},
		quotations: []quotation.Quotation{},
		alerts:     []inventory.StockAlert{},
		settings:   Settings{BillTheme: "minimal"},
	}
}

// Restore loads the persisted snapshot, if any, seeds the document number
// series past every issued number, and recomputes the alert set.
func (s *Store) Restore(ctx context.Context) error {
	if s.snapshots == nil {
		return nil
	}
	snap, err := s.snapshots.Load(ctx)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}
	if snap == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = snap.Products
	s.bills = snap.Bills
	s.quotations = snap.Quotations
	if snap.Settings.BillTheme != "" {
		s.settings = snap.Settings
	}
	billNumbers := make([]string, len(s.bills))
	for i, b := range s.bills {
		billNumbers[i] = b.BillNumber
	}
	s.seq.Seed(docnum.KindBill, billNumbers)
	quoteNumbers := make([]string, len(s.quotations))
	for i, q := range s.quotations {
		quoteNumbers[i] = q.QuotationNumber
	}
	s.seq.Seed(docnum.KindQuotation, quoteNumbers)
	s.alerts = inventory.ComputeAlerts(s.products)
	return nil
}

// --- read accessors --------------------------------------------------------

// Products returns a copy of the product collection.
func (s *Store) Products() []catalog.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]catalog.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Bills returns a copy of the bill collection.
func (s *Store) Bills() []billing.Bill {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]billing.Bill, len(s.bills))
	copy(out, s.bills)
	return out
}

// Bill looks up one bill by id.
func (s *Store) Bill(id string) (billing.Bill, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.bills {
		if b.ID == id {
			return b, true
		}
	}
	return billing.Bill{}, false
}

// Quotations returns a copy of the quotation collection.
func (s *Store) Quotations() []quotation.Quotation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]quotation.Quotation, len(s.quotations))
	copy(out, s.quotations)
	return out
}

// Quotation looks up one quotation by id.
func (s *Store) Quotation(id string) (quotation.Quotation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, q := range s.quotations {
		if q.ID == id {
			return q, true
		}
	}
	return quotation.Quotation{}, false
}

// StockAlerts returns a copy of the current alert set.
func (s *Store) StockAlerts() []inventory.StockAlert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]inventory.StockAlert, len(s.alerts))
	copy(out, s.alerts)
	return out
}

// Settings returns the current settings.
func (s *Store) Settings() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// --- product mutators ------------------------------------------------------

// AddProduct appends a product, assigning an id when absent.
func (s *Store) AddProduct(ctx context.Context, p catalog.Product) (catalog.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	} else if _, ok := catalog.FindByID(s.products, p.ID); ok {
		return catalog.Product{}, fmt.Errorf("product %s: %w", p.ID, shared.ErrConflict)
	}
	s.products = append(s.products, p)
	s.alerts = inventory.ComputeAlerts(s.products)
	s.commit(ctx, true)
	return p, nil
}

// UpdateProduct replaces the product with a matching id.
func (s *Store) UpdateProduct(ctx context.Context, p catalog.Product) (catalog.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.products {
		if existing.ID == p.ID {
			s.products[i] = p
			s.alerts = inventory.ComputeAlerts(s.products)
			s.commit(ctx, true)
			return p, nil
		}
	}
	return catalog.Product{}, fmt.Errorf("product %s: %w", p.ID, shared.ErrNotFound)
}

// DeleteProduct removes the product with the given id.
func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.products {
		if existing.ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			s.alerts = inventory.ComputeAlerts(s.products)
			s.commit(ctx, true)
			return nil
		}
	}
	return fmt.Errorf("product %s: %w", id, shared.ErrNotFound)
}

// --- bill mutator ----------------------------------------------------------

// CreateBill builds the bill from the request, applies it against stock,
// recomputes alerts, and appends it — all as a single state transition.
// On any error nothing is mutated. Item prices are copied from the product
// at creation time; lines referencing unknown products carry price zero
// and are handled per the configured orphan policy.
func (s *Store) CreateBill(ctx context.Context, req billing.CreateBillRequest) (billing.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]billing.BillItem, len(req.Items))
	for i, it := range req.Items {
		var price float64
		if p, ok := catalog.FindByID(s.products, it.ProductID); ok {
			price = p.Price
		}
		items[i] = billing.BillItem{ProductID: it.ProductID, Quantity: it.Quantity, Price: price}
	}
	items = billing.NormalizeItems(items)

	now := s.now()
	bill := billing.Bill{
		ID:            uuid.NewString(),
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Items:         items,
		Total:         billing.SumItems(items),
		Date:          now,
		PaymentType:   req.PaymentType,
		GSTNumber:     req.GSTNumber,
		IsGSTBill:     req.IsGSTBill,
	}
	if bill.IsGSTBill {
		bill.TotalGST = billing.ComputeGST(items, s.products)
	}

	updated, err := s.ledger.ApplyBill(s.products, bill)
	if err != nil {
		return billing.Bill{}, err
	}

	// Number is reserved only after the bill is known to apply cleanly.
	bill.BillNumber = s.seq.Next(docnum.KindBill, now)
	s.bills = append(s.bills, bill)
	s.products = updated
	s.alerts = inventory.ComputeAlerts(s.products)
	s.commit(ctx, true)
	return bill, nil
}

// --- quotation mutators ----------------------------------------------------

// AddQuotation appends a quotation, assigning identity and number. A
// non-empty payment term set must sum to exactly 100 percent.
func (s *Store) AddQuotation(ctx context.Context, q quotation.Quotation) (quotation.Quotation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(q.PaymentTerms) > 0 && !quotation.ValidateTerms(q.PaymentTerms) {
		return quotation.Quotation{}, quotation.ErrTermsNotSettled
	}
	now := s.now()
	q.ID = uuid.NewString()
	q.QuotationNumber = s.seq.Next(docnum.KindQuotation, now)
	q.Date = now
	if q.Status == "" {
		q.Status = quotation.StatusDraft
	}
	s.quotations = append(s.quotations, q)
	s.commit(ctx, false)
	return q, nil
}

// UpdateQuotation replaces the quotation with a matching id. Identity,
// number, and creation date are preserved; the status change must follow
// the transition table and a non-empty term set must sum to 100.
func (s *Store) UpdateQuotation(ctx context.Context, q quotation.Quotation) (quotation.Quotation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.quotations {
		if existing.ID != q.ID {
			continue
		}
		if !existing.Status.CanTransition(q.Status) {
			return quotation.Quotation{}, fmt.Errorf("%s -> %s: %w", existing.Status, q.Status, quotation.ErrInvalidTransition)
		}
		if len(q.PaymentTerms) > 0 && !quotation.ValidateTerms(q.PaymentTerms) {
			return quotation.Quotation{}, quotation.ErrTermsNotSettled
		}
		q.QuotationNumber = existing.QuotationNumber
		q.Date = existing.Date
		s.quotations[i] = q
		s.commit(ctx, false)
		return q, nil
	}
	return quotation.Quotation{}, fmt.Errorf("quotation %s: %w", q.ID, shared.ErrNotFound)
}

// TransitionQuotation moves a quotation to the next status, enforcing
// draft -> sent -> accepted|rejected.
func (s *Store) TransitionQuotation(ctx context.Context, id string, next quotation.Status) (quotation.Quotation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.quotations {
		if existing.ID != id {
			continue
		}
		if !existing.Status.CanTransition(next) {
			return quotation.Quotation{}, fmt.Errorf("%s -> %s: %w", existing.Status, next, quotation.ErrInvalidTransition)
		}
		s.quotations[i].Status = next
		s.commit(ctx, false)
		return s.quotations[i], nil
	}
	return quotation.Quotation{}, fmt.Errorf("quotation %s: %w", id, shared.ErrNotFound)
}

// DeleteQuotation removes the quotation with the given id.
func (s *Store) DeleteQuotation(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.quotations {
		if existing.ID == id {
			s.quotations = append(s.quotations[:i], s.quotations[i+1:]...)
			s.commit(ctx, false)
			return nil
		}
	}
	return fmt.Errorf("quotation %s: %w", id, shared.ErrNotFound)
}

// --- settings mutators -----------------------------------------------------

// SetBillTheme selects the bill rendering theme.
func (s *Store) SetBillTheme(ctx context.Context, theme string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.BillTheme = theme
	s.commit(ctx, false)
	return nil
}

// UpdatePaymentSettings replaces the payee configuration.
func (s *Store) UpdatePaymentSettings(ctx context.Context, ps PaymentSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.Payment = &ps
	s.commit(ctx, false)
	return nil
}

// commit persists the snapshot and, when products or bills changed,
// invalidates the analytics cache. Must be called with the write lock
// held. Persistence failures are logged, not surfaced: in-memory state
// stays authoritative.
func (s *Store) commit(ctx context.Context, bumpCache bool) {
	if s.snapshots != nil {
		snap := Snapshot{
			Products:   s.products,
			Bills:      s.bills,
			Quotations: s.quotations,
			Settings:   s.settings,
			SavedAt:    s.now(),
		}
		if err := s.snapshots.Save(ctx, snap); err != nil {
			s.logger.Warn("save snapshot", slog.Any("error", err))
		}
	}
	if bumpCache && s.cache != nil {
		if err := s.cache.Bump(ctx); err != nil {
			s.logger.Warn("bump analytics cache", slog.Any("error", err))
		}
	}
}
