package cmd

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/komo3344/airbnb-backend/config"
	"github.com/komo3344/airbnb-backend/models"
	"github.com/komo3344/airbnb-backend/services/listing"
	"github.com/komo3344/airbnb-backend/services/user"
	"github.com/komo3344/airbnb-backend/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var seedCities = []struct{ Country, City string }{
	{"Korea", "Seoul"},
	{"Korea", "Busan"},
	{"Japan", "Osaka"},
}

var seedKinds = []models.RoomKind{models.RoomEntirePlace, models.RoomPrivate, models.RoomShared}

func newSeedCmd() *cobra.Command {
	var (
		perCity  int
		username string
		password string
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create a demo host with rooms and experiences",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := utils.GetLogger()
			defer logger.Sync()

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			st, err := openStores(ctx, config.AppConfig.StoreBackend, true, logger)
			if err != nil {
				return err
			}
			defer st.close()

			users := &user.DefaultUserService{Repo: st.users, TokenTTL: config.TokenTTL()}
			listings := st.listings(nil, config.PageSize())
			rooms, experiences, err := seed(ctx, users, listings, username, password, perCity, config.Location())
			if err != nil {
				return err
			}
			logger.Info("Seeded demo listings",
				zap.String("host", username),
				zap.Int("rooms", rooms),
				zap.Int("experiences", experiences),
			)
			return nil
		},
	}

	cmd.Flags().IntVar(&perCity, "per-city", 3, "rooms to create in each city")
	cmd.Flags().StringVar(&username, "username", "demo-host", "username of the demo host")
	cmd.Flags().StringVar(&password, "password", "demo-password", "password of the demo host")
	return cmd
}

// seed registers the demo host, or logs in when it already exists, and
// creates perCity rooms plus one experience in every seed city.
func seed(ctx context.Context, users user.UserService, listings listing.ListingService, username, password string, perCity int, loc *time.Location) (int, int, error) {
	auth, err := users.RegisterUser(ctx, models.UserRegistration{
		Username: username,
		Email:    username + "@example.com",
		Password: password,
		Name:     "Demo Host",
		IsHost:   true,
	})
	if errors.Is(err, user.ErrUserExists) {
		auth, err = users.AuthenticateUser(ctx, username, password)
	}
	if err != nil {
		return 0, 0, fmt.Errorf("demo host: %w", err)
	}

	start := utils.Today(loc, time.Now())
	var rooms, experiences int
	for _, c := range seedCities {
		for i := 0; i < perCity; i++ {
			_, err := listings.CreateRoom(ctx, auth.ID, models.RoomInput{
				Name:    fmt.Sprintf("%s stay #%d", c.City, i+1),
				Country: c.Country,
				City:    c.City,
				Price:   50 + rand.Intn(200),
				Rooms:   1 + rand.Intn(3),
				Toilets: 1 + rand.Intn(2),
				Kind:    seedKinds[i%len(seedKinds)],
			})
			if err != nil {
				return rooms, experiences, err
			}
			rooms++
		}

		first, last := start.AddDays(7), start.AddDays(90)
		_, err := listings.CreateExperience(ctx, auth.ID, models.ExperienceInput{
			Name:    c.City + " food walk",
			Country: c.Country,
			City:    c.City,
			Price:   30 + rand.Intn(50),
			Start:   &first,
			End:     &last,
		})
		if err != nil {
			return rooms, experiences, err
		}
		experiences++
	}
	return rooms, experiences, nil
}
