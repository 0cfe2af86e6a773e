package controllers

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"lumina-store/middleware"
	"lumina-store/models"
	"lumina-store/stores"
	"lumina-store/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// withClaims attaches claims for the given email to a request, as if
// AuthMiddleware had run.
func withClaims(req *http.Request, email string) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.UserContextKey, &utils.Claims{Email: email})
	return req.WithContext(ctx)
}

type fakeUserStore struct {
	mu    sync.Mutex
	users []models.User
}

func (s *fakeUserStore) List(ctx context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.User(nil), s.users...), nil
}

func (s *fakeUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].Email == email {
			user := s.users[i]
			return &user, nil
		}
	}
	return nil, stores.ErrNotFound
}

func (s *fakeUserStore) Insert(ctx context.Context, user models.User) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user.ID = primitive.NewObjectID()
	s.users = append(s.users, user)
	return user.ID.Hex(), nil
}

func (s *fakeUserStore) PromoteToAdmin(ctx context.Context, id string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID.Hex() == id {
			s.users[i].Role = "admin"
			return 1, nil
		}
	}
	return 0, nil
}

func (s *fakeUserStore) Delete(ctx context.Context, id string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID.Hex() == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (s *fakeUserStore) Count(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.users)), nil
}

type fakeProductStore struct {
	mu       sync.Mutex
	products []models.Product
}

func (s *fakeProductStore) List(ctx context.Context) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Product(nil), s.products...), nil
}

func (s *fakeProductStore) FindByID(ctx context.Context, id string) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID.Hex() == id {
			product := s.products[i]
			return &product, nil
		}
	}
	return nil, stores.ErrNotFound
}

func (s *fakeProductStore) Insert(ctx context.Context, product models.Product) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	product.ID = primitive.NewObjectID()
	s.products = append(s.products, product)
	return product.ID.Hex(), nil
}

func (s *fakeProductStore) Update(ctx context.Context, id string, product models.Product) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID.Hex() == id {
			product.ID = s.products[i].ID
			s.products[i] = product
			return 1, nil
		}
	}
	return 0, nil
}

func (s *fakeProductStore) Delete(ctx context.Context, id string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID.Hex() == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (s *fakeProductStore) Count(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.products)), nil
}

type fakeOrderStore struct {
	mu        sync.Mutex
	orders    []models.Order
	deleteErr error
}

func (s *fakeOrderStore) ListByEmail(ctx context.Context, email string) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Order
	for _, order := range s.orders {
		if order.Email == email {
			out = append(out, order)
		}
	}
	return out, nil
}

func (s *fakeOrderStore) FindOpen(ctx context.Context, productID, email string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ProductID == productID && s.orders[i].Email == email {
			order := s.orders[i]
			return &order, nil
		}
	}
	return nil, stores.ErrNotFound
}

func (s *fakeOrderStore) Insert(ctx context.Context, order models.Order) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order.ID = primitive.NewObjectID()
	s.orders = append(s.orders, order)
	return order.ID.Hex(), nil
}

func (s *fakeOrderStore) IncrementQuantity(ctx context.Context, id primitive.ObjectID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Quantity++
			return 1, nil
		}
	}
	return 0, nil
}

func (s *fakeOrderStore) Delete(ctx context.Context, id string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID.Hex() == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (s *fakeOrderStore) DeleteByIDs(ctx context.Context, ids []string) (int64, error) {
	if s.deleteErr != nil {
		return 0, s.deleteErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var kept []models.Order
	var deleted int64
	for _, order := range s.orders {
		if wanted[order.ID.Hex()] {
			deleted++
			continue
		}
		kept = append(kept, order)
	}
	s.orders = kept
	return deleted, nil
}

type fakePaymentStore struct {
	mu        sync.Mutex
	payments  []models.Payment
	breakdown []models.CategoryStat
	insertErr error
}

func (s *fakePaymentStore) Insert(ctx context.Context, payment models.Payment) (string, error) {
	if s.insertErr != nil {
		return "", s.insertErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	payment.ID = primitive.NewObjectID()
	s.payments = append(s.payments, payment)
	return payment.ID.Hex(), nil
}

func (s *fakePaymentStore) ListByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Payment
	for _, payment := range s.payments {
		if payment.Email == email {
			out = append(out, payment)
		}
	}
	return out, nil
}

func (s *fakePaymentStore) Count(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.payments)), nil
}

func (s *fakePaymentStore) TotalRevenue(ctx context.Context) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, payment := range s.payments {
		total += payment.Price
	}
	return total, nil
}

func (s *fakePaymentStore) CategoryBreakdown(ctx context.Context) ([]models.CategoryStat, error) {
	return s.breakdown, nil
}

type fakeGateway struct {
	lastAmount int64
	secret     string
	err        error
}

func (g *fakeGateway) CreateIntent(amount int64) (string, error) {
	g.lastAmount = amount
	if g.err != nil {
		return "", g.err
	}
	return g.secret, nil
}

var errStoreDown = errors.New("store down")
