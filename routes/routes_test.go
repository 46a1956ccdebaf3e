package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	catalogRepo "github.com/komo3344/airbnb-backend/database/repository/catalog"
	experienceRepo "github.com/komo3344/airbnb-backend/database/repository/experience"
	reservationRepo "github.com/komo3344/airbnb-backend/database/repository/reservation"
	reviewRepo "github.com/komo3344/airbnb-backend/database/repository/review"
	roomRepo "github.com/komo3344/airbnb-backend/database/repository/room"
	userRepo "github.com/komo3344/airbnb-backend/database/repository/user"
	wishlistRepo "github.com/komo3344/airbnb-backend/database/repository/wishlist"
	"github.com/komo3344/airbnb-backend/handlers"
	"github.com/komo3344/airbnb-backend/services/booking"
	"github.com/komo3344/airbnb-backend/services/listing"
	"github.com/komo3344/airbnb-backend/services/user"
	"github.com/komo3344/airbnb-backend/services/wishlist"
	"github.com/komo3344/airbnb-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type testServer struct {
	t      *testing.T
	router *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := userRepo.NewMemoryUserRepo()
	rooms := roomRepo.NewMemoryRoomRepo()
	experiences := experienceRepo.NewMemoryExperienceRepo()

	seoul, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		t.Fatalf("load zone: %v", err)
	}
	userSvc := &user.DefaultUserService{Repo: users}
	listingSvc := &listing.DefaultListingService{
		Rooms:       rooms,
		Experiences: experiences,
		Reviews:     reviewRepo.NewMemoryReviewRepo(),
		Amenities:   catalogRepo.NewMemoryAmenityRepo(),
		Perks:       catalogRepo.NewMemoryPerkRepo(),
		Users:       users,
		PageSize:    10,
	}
	bookingSvc := &booking.DefaultBookingService{
		Reservations: reservationRepo.NewMemoryReservationRepo(),
		Rooms:        rooms,
		Experiences:  experiences,
		PageSize:     10,
		Logger:       zap.NewNop(),
	}
	bh := handlers.NewBookingHandler(bookingSvc, seoul)
	// 2030-01-10 09:00 in Seoul.
	bh.Now = func() time.Time { return time.Date(2030, 1, 10, 0, 0, 0, 0, time.UTC) }

	wishlistSvc := &wishlist.DefaultWishlistService{
		Lists:       wishlistRepo.NewMemoryWishlistRepo(),
		Rooms:       rooms,
		Experiences: experiences,
		Logger:      zap.NewNop(),
	}

	hb := handlers.NewHandlerBundle(users, nil, handlers.NewUserHandler(userSvc), handlers.NewListingHandler(listingSvc), bh, handlers.NewWishlistHandler(wishlistSvc))
	r := gin.New()
	r.Use(utils.ErrorHandler())
	RegisterRoutes(r, hb)
	return &testServer{t: t, router: r}
}

func (s *testServer) do(method, path, token string, body any) *httptest.ResponseRecorder {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			s.t.Fatalf("encode: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) expect(w *httptest.ResponseRecorder, status int, out any) {
	s.t.Helper()
	if w.Code != status {
		s.t.Fatalf("status = %d, want %d: %s", w.Code, status, w.Body.String())
	}
	if out != nil {
		if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
			s.t.Fatalf("decode %s: %v", w.Body.String(), err)
		}
	}
}

func (s *testServer) register(username string) (id, token string) {
	s.t.Helper()
	var resp struct {
		ID    string `json:"id"`
		Token string `json:"token"`
	}
	s.expect(s.do(http.MethodPost, "/api/users/register", "", map[string]any{
		"username": username,
		"email":    username + "@example.com",
		"password": "correct-horse",
	}), http.StatusCreated, &resp)
	return resp.ID, resp.Token
}

type page struct {
	Count    int              `json:"count"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
	Results  []map[string]any `json:"results"`
}

func TestRoomBookingFlow(t *testing.T) {
	s := newTestServer(t)
	_, hostToken := s.register("host")
	_, guestToken := s.register("guest")
	_, otherToken := s.register("other")

	var room struct {
		ID string `json:"id"`
	}
	s.expect(s.do(http.MethodPost, "/api/rooms", hostToken, map[string]any{
		"name": "Hanok", "country": "Korea", "city": "Seoul", "price": 120, "kind": "entire_place",
	}), http.StatusCreated, &room)
	bookings := "/api/rooms/" + room.ID + "/bookings"

	s.expect(s.do(http.MethodPost, bookings, "", map[string]any{
		"check_in": "2030-02-01", "check_out": "2030-02-05", "guests": 2,
	}), http.StatusUnauthorized, nil)

	var created map[string]any
	s.expect(s.do(http.MethodPost, bookings, guestToken, map[string]any{
		"check_in": "2030-02-01", "check_out": "2030-02-05", "guests": 2,
	}), http.StatusOK, &created)
	if created["check_in"] != "2030-02-01" || created["pk"] == "" {
		t.Fatalf("unexpected booking body %v", created)
	}
	bookingID, _ := created["pk"].(string)

	refusals := []struct {
		name   string
		body   map[string]any
		reason string
	}{
		{"handoff day", map[string]any{"check_in": "2030-02-05", "check_out": "2030-02-06", "guests": 1}, "overlap"},
		{"past", map[string]any{"check_in": "2030-01-09", "check_out": "2030-01-11", "guests": 1}, "past_date"},
		{"reversed", map[string]any{"check_in": "2030-03-05", "check_out": "2030-03-01", "guests": 1}, "bad_ordering"},
	}
	for _, tt := range refusals {
		t.Run(tt.name, func(t *testing.T) {
			var body map[string]any
			s.expect(s.do(http.MethodPost, bookings, otherToken, tt.body), http.StatusBadRequest, &body)
			if body["reason"] != tt.reason {
				t.Fatalf("reason = %v, want %s", body["reason"], tt.reason)
			}
		})
	}

	s.expect(s.do(http.MethodPost, bookings, otherToken, map[string]any{
		"check_in": "2030-02-10", "check_out": "2030-02-10", "guests": 0,
	}), http.StatusBadRequest, nil)

	var p page
	s.expect(s.do(http.MethodGet, bookings+"?month=2030-02", "", nil), http.StatusOK, &p)
	if p.Count != 1 || p.Page != 1 || p.PageSize != 10 || len(p.Results) != 1 {
		t.Fatalf("unexpected page %+v", p)
	}
	if _, leaked := p.Results[0]["user_id"]; leaked {
		t.Fatal("public listing exposes user_id")
	}
	s.expect(s.do(http.MethodGet, bookings+"?month=2030-03", "", nil), http.StatusOK, &p)
	if p.Count != 0 || p.Results == nil {
		t.Fatalf("expected empty March, got %+v", p)
	}
	s.expect(s.do(http.MethodGet, bookings+"?page=abc", "", nil), http.StatusOK, &p)
	if p.Page != 1 || p.Count != 1 {
		t.Fatalf("non-numeric page should fall back to 1, got %+v", p)
	}
	for _, path := range []string{bookings, "/api/rooms"} {
		s.expect(s.do(http.MethodGet, path+"?page=9223372036854775807", "", nil), http.StatusOK, &p)
		if p.Count != 1 || len(p.Results) != 0 {
			t.Fatalf("%s: huge page should be empty, got %+v", path, p)
		}
	}
	s.expect(s.do(http.MethodGet, "/api/rooms/missing/bookings", "", nil), http.StatusNotFound, nil)

	s.expect(s.do(http.MethodGet, "/api/bookings/"+bookingID, otherToken, nil), http.StatusForbidden, nil)
	s.expect(s.do(http.MethodGet, "/api/bookings/"+bookingID, guestToken, nil), http.StatusOK, nil)
	s.expect(s.do(http.MethodDelete, "/api/bookings/"+bookingID, guestToken, nil), http.StatusNotImplemented, nil)

	var mine []map[string]any
	s.expect(s.do(http.MethodGet, "/api/bookings/mine", guestToken, nil), http.StatusOK, &mine)
	if len(mine) != 1 {
		t.Fatalf("expected one booking, got %v", mine)
	}
}

func TestListingOwnership(t *testing.T) {
	s := newTestServer(t)
	_, hostToken := s.register("host")
	_, guestToken := s.register("guest")

	var room struct {
		ID string `json:"id"`
	}
	s.expect(s.do(http.MethodPost, "/api/rooms", hostToken, map[string]any{
		"name": "Loft", "country": "Korea", "city": "Busan", "kind": "private_room",
	}), http.StatusCreated, &room)

	s.expect(s.do(http.MethodPut, "/api/rooms/"+room.ID, guestToken, map[string]any{"price": 1}), http.StatusForbidden, nil)
	s.expect(s.do(http.MethodDelete, "/api/rooms/"+room.ID, guestToken, nil), http.StatusForbidden, nil)

	var updated map[string]any
	s.expect(s.do(http.MethodPut, "/api/rooms/"+room.ID, hostToken, map[string]any{"price": 99}), http.StatusOK, &updated)
	if updated["price"] != float64(99) {
		t.Fatalf("price not updated: %v", updated)
	}

	s.expect(s.do(http.MethodPost, "/api/rooms", hostToken, map[string]any{
		"name": "Castle", "country": "Korea", "city": "Busan", "kind": "castle",
	}), http.StatusBadRequest, nil)

	var p page
	s.expect(s.do(http.MethodGet, "/api/rooms?city=busan", "", nil), http.StatusOK, &p)
	if p.Count != 1 {
		t.Fatalf("expected one Busan room, got %+v", p)
	}

	s.expect(s.do(http.MethodDelete, "/api/rooms/"+room.ID, hostToken, nil), http.StatusNoContent, nil)
	s.expect(s.do(http.MethodGet, "/api/rooms/"+room.ID, "", nil), http.StatusNotFound, nil)
}

func TestExperienceBookingFlow(t *testing.T) {
	s := newTestServer(t)
	_, hostToken := s.register("host")
	_, guestToken := s.register("guest")

	var exp struct {
		ID string `json:"id"`
	}
	s.expect(s.do(http.MethodPost, "/api/experiences", hostToken, map[string]any{
		"name": "Temple stay", "country": "Korea", "city": "Gyeongju",
		"start": "2030-03-01", "end": "2030-03-03",
	}), http.StatusCreated, &exp)
	bookings := "/api/experiences/" + exp.ID + "/bookings"

	s.expect(s.do(http.MethodPost, bookings, guestToken, map[string]any{"experience_time": "2030-03-02", "guests": 1}), http.StatusOK, nil)

	var body map[string]any
	s.expect(s.do(http.MethodPost, bookings, guestToken, map[string]any{"experience_time": "2030-03-04", "guests": 1}), http.StatusBadRequest, &body)
	if body["reason"] != "out_of_window" {
		t.Fatalf("reason = %v", body["reason"])
	}
	s.expect(s.do(http.MethodPost, bookings, guestToken, map[string]any{"experience_time": "2030-03-02", "guests": 1}), http.StatusBadRequest, &body)
	if body["reason"] != "overlap" {
		t.Fatalf("reason = %v", body["reason"])
	}

	var p page
	s.expect(s.do(http.MethodGet, bookings, "", nil), http.StatusOK, &p)
	if p.Count != 1 || p.Results[0]["experience_time"] != "2030-03-02" {
		t.Fatalf("unexpected experience bookings %+v", p)
	}

	s.expect(s.do(http.MethodPost, "/api/experiences", hostToken, map[string]any{
		"name": "Backwards", "country": "Korea", "city": "Seoul",
		"start": "2030-03-05", "end": "2030-03-01",
	}), http.StatusBadRequest, nil)
}

func TestAccountEndpoints(t *testing.T) {
	s := newTestServer(t)
	id, token := s.register("komo")

	s.expect(s.do(http.MethodPost, "/api/users/register", "", map[string]any{
		"username": "komo", "email": "again@example.com", "password": "correct-horse",
	}), http.StatusConflict, nil)
	s.expect(s.do(http.MethodPost, "/api/users/login", "", map[string]any{
		"username": "komo", "password": "nope-nope",
	}), http.StatusUnauthorized, nil)

	var me map[string]any
	s.expect(s.do(http.MethodGet, "/api/users/me", token, nil), http.StatusOK, &me)
	if me["id"] != id {
		t.Fatalf("unexpected me %v", me)
	}
	if _, leaked := me["password_hash"]; leaked {
		t.Fatal("password hash exposed")
	}

	var login struct {
		Token string `json:"token"`
	}
	s.expect(s.do(http.MethodPost, "/api/users/login", "", map[string]any{
		"username": "komo", "password": "correct-horse",
	}), http.StatusOK, &login)

	// Logging in again supersedes the registration token.
	s.expect(s.do(http.MethodGet, "/api/users/me", token, nil), http.StatusUnauthorized, nil)
	s.expect(s.do(http.MethodGet, "/api/users/profile/komo", "", nil), http.StatusOK, nil)

	s.expect(s.do(http.MethodPost, "/api/users/logout", login.Token, nil), http.StatusOK, nil)
	s.expect(s.do(http.MethodGet, "/api/users/me", login.Token, nil), http.StatusUnauthorized, nil)
}

func TestHealthRoute(t *testing.T) {
	s := newTestServer(t)
	s.expect(s.do(http.MethodGet, "/health", "", nil), http.StatusOK, nil)
}

func TestReviewAndCatalogFlow(t *testing.T) {
	s := newTestServer(t)
	_, hostToken := s.register("host")
	_, guestToken := s.register("guest")

	var wifi struct {
		ID string `json:"id"`
	}
	s.expect(s.do(http.MethodPost, "/api/amenities", "", map[string]any{"name": "Wi-Fi"}), http.StatusUnauthorized, nil)
	s.expect(s.do(http.MethodPost, "/api/amenities", hostToken, map[string]any{"name": "Wi-Fi"}), http.StatusCreated, &wifi)
	s.expect(s.do(http.MethodGet, "/api/amenities/missing", "", nil), http.StatusNotFound, nil)

	var room struct {
		ID        string   `json:"id"`
		Amenities []string `json:"amenities"`
	}
	s.expect(s.do(http.MethodPost, "/api/rooms", hostToken, map[string]any{
		"name": "Hanok", "country": "Korea", "city": "Seoul", "price": 120, "kind": "entire_place",
		"amenities": []string{wifi.ID, "sauna"},
	}), http.StatusCreated, &room)
	if len(room.Amenities) != 1 || room.Amenities[0] != wifi.ID {
		t.Fatalf("amenities = %v", room.Amenities)
	}

	var amenities page
	s.expect(s.do(http.MethodGet, "/api/rooms/"+room.ID+"/amenities", "", nil), http.StatusOK, &amenities)
	if amenities.Count != 1 || amenities.Results[0]["name"] != "Wi-Fi" {
		t.Fatalf("room amenities = %+v", amenities)
	}

	reviews := "/api/rooms/" + room.ID + "/reviews"
	s.expect(s.do(http.MethodPost, reviews, "", map[string]any{"payload": "lovely", "rating": 5}), http.StatusUnauthorized, nil)
	s.expect(s.do(http.MethodPost, reviews, guestToken, map[string]any{"payload": "bad", "rating": 0}), http.StatusBadRequest, nil)
	s.expect(s.do(http.MethodPost, reviews, guestToken, map[string]any{"rating": 4}), http.StatusBadRequest, nil)

	var review struct {
		Rating int `json:"rating"`
		User   struct {
			Username string `json:"username"`
		} `json:"user"`
	}
	s.expect(s.do(http.MethodPost, reviews, guestToken, map[string]any{"payload": "lovely", "rating": 5}), http.StatusCreated, &review)
	if review.Rating != 5 || review.User.Username != "guest" {
		t.Fatalf("unexpected review %+v", review)
	}

	var listed page
	s.expect(s.do(http.MethodGet, reviews, "", nil), http.StatusOK, &listed)
	if listed.Count != 1 || listed.Results[0]["payload"] != "lovely" {
		t.Fatalf("reviews = %+v", listed)
	}
	s.expect(s.do(http.MethodGet, "/api/experiences/"+room.ID+"/reviews", "", nil), http.StatusNotFound, nil)

	var perk struct {
		ID string `json:"id"`
	}
	s.expect(s.do(http.MethodPost, "/api/perks", hostToken, map[string]any{"name": "Lunch"}), http.StatusCreated, &perk)
	s.expect(s.do(http.MethodPut, "/api/perks/"+perk.ID, hostToken, map[string]any{"details": "Bibimbap"}), http.StatusOK, nil)
	s.expect(s.do(http.MethodDelete, "/api/perks/"+perk.ID, hostToken, nil), http.StatusNoContent, nil)
	s.expect(s.do(http.MethodGet, "/api/perks/"+perk.ID, "", nil), http.StatusNotFound, nil)
}

func TestWishlistFlow(t *testing.T) {
	s := newTestServer(t)
	_, hostToken := s.register("host")
	_, guestToken := s.register("guest")
	_, otherToken := s.register("other")

	var room struct {
		ID string `json:"id"`
	}
	s.expect(s.do(http.MethodPost, "/api/rooms", hostToken, map[string]any{
		"name": "Hanok", "country": "Korea", "city": "Seoul", "price": 120, "kind": "entire_place",
	}), http.StatusCreated, &room)

	s.expect(s.do(http.MethodGet, "/api/wishlists", "", nil), http.StatusUnauthorized, nil)
	s.expect(s.do(http.MethodPost, "/api/wishlists", guestToken, map[string]any{}), http.StatusBadRequest, nil)

	var list struct {
		ID    string           `json:"id"`
		Name  string           `json:"name"`
		Rooms []map[string]any `json:"rooms"`
	}
	s.expect(s.do(http.MethodPost, "/api/wishlists", guestToken, map[string]any{"name": "Summer"}), http.StatusCreated, &list)
	item := "/api/wishlists/" + list.ID

	s.expect(s.do(http.MethodPut, item+"/rooms/"+room.ID, guestToken, nil), http.StatusOK, &list)
	if len(list.Rooms) != 1 || list.Rooms[0]["name"] != "Hanok" || list.Rooms[0]["price"] != float64(120) {
		t.Fatalf("room not saved: %+v", list.Rooms)
	}
	s.expect(s.do(http.MethodPut, item+"/rooms/missing", guestToken, nil), http.StatusNotFound, nil)

	s.expect(s.do(http.MethodGet, item, otherToken, nil), http.StatusNotFound, nil)
	s.expect(s.do(http.MethodPut, item+"/rooms/"+room.ID, otherToken, nil), http.StatusNotFound, nil)

	s.expect(s.do(http.MethodPut, item, guestToken, map[string]any{"name": "Winter"}), http.StatusOK, &list)
	if list.Name != "Winter" || len(list.Rooms) != 1 {
		t.Fatalf("rename = %+v", list)
	}
	s.expect(s.do(http.MethodPut, item+"/rooms/"+room.ID, guestToken, nil), http.StatusOK, &list)
	if len(list.Rooms) != 0 {
		t.Fatalf("second toggle should remove the room: %+v", list.Rooms)
	}

	var mine []map[string]any
	s.expect(s.do(http.MethodGet, "/api/wishlists", guestToken, nil), http.StatusOK, &mine)
	if len(mine) != 1 {
		t.Fatalf("wishlists = %+v", mine)
	}
	s.expect(s.do(http.MethodDelete, item, guestToken, nil), http.StatusNoContent, nil)
	s.expect(s.do(http.MethodGet, item, guestToken, nil), http.StatusNotFound, nil)
}
