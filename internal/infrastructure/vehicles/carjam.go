package vehicles

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"towdispatch/internal/domain/entities"
	"towdispatch/internal/infrastructure/config"
	"towdispatch/internal/usecase/interfaces"

	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/errors"
)

// CarJamLookup resolves NZ plates through CarJam. Any failure, or a missing
// API key, yields a deterministic demo vehicle flagged Demo.
type CarJamLookup struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

var _ interfaces.IVehicleLookup = (*CarJamLookup)(nil)

func NewCarJamLookup(cfg config.CarJamConfig, client *http.Client) *CarJamLookup {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	if cfg.APIKey == "" {
		log.Printf("[vehicle][carjam] api key not configured, using demo data")
	}
	return &CarJamLookup{client: client, baseURL: cfg.BaseURL, apiKey: cfg.APIKey}
}

type carJamVehicle struct {
	Plate      string      `json:"plate"`
	Make       string      `json:"make"`
	Model      string      `json:"model"`
	MainColour string      `json:"main_colour"`
	Year       json.Number `json:"year_of_manufacture"`
	VIN        string      `json:"vin"`
	FuelType   string      `json:"fuel_type"`
	CCRating   json.Number `json:"cc_rating"`
}

func (l *CarJamLookup) Lookup(ctx context.Context, plate string) (entities.Vehicle, error) {
	plate = entities.NormalizeRego(plate)
	if l.apiKey == "" || l.baseURL == "" {
		return DemoVehicle(plate), nil
	}
	v, err := l.fetch(ctx, plate)
	if err != nil {
		log.Printf("[vehicle][carjam] lookup failed plate=%s err=%v, using demo data", plate, err)
		return DemoVehicle(plate), nil
	}
	return v, nil
}

func (l *CarJamLookup) fetch(ctx context.Context, plate string) (entities.Vehicle, error) {
	u, err := url.Parse(l.baseURL)
	if err != nil {
		return entities.Vehicle{}, errors.Wrap(err, "carjam base url")
	}
	q := u.Query()
	q.Set("key", l.apiKey)
	q.Set("plate", plate)
	q.Set("f", "json")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return entities.Vehicle{}, err
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return entities.Vehicle{}, errors.Wrap(err, "carjam request")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return entities.Vehicle{}, errors.Newf("carjam status %d", resp.StatusCode)
	}

	var cj carJamVehicle
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(&cj); err != nil {
		return entities.Vehicle{}, errors.Wrap(err, "carjam decode")
	}
	if cj.Make == "" && cj.Model == "" {
		return entities.Vehicle{}, errors.Newf("carjam returned no vehicle for %s", plate)
	}
	if cj.Plate == "" {
		cj.Plate = plate
	}
	return entities.Vehicle{
		Plate:    entities.NormalizeRego(cj.Plate),
		Make:     titleCase(cj.Make),
		Model:    titleCase(cj.Model),
		Color:    titleCase(cj.MainColour),
		Year:     cj.Year.String(),
		VIN:      cj.VIN,
		Fuel:     cj.FuelType,
		CCRating: cj.CCRating.String(),
	}, nil
}

var demoFleet = []struct{ make, model, color string }{
	{"Toyota", "Corolla", "Silver"},
	{"Mazda", "Demio", "Blue"},
	{"Nissan", "Tiida", "White"},
	{"Honda", "Fit", "Red"},
	{"Ford", "Ranger", "Black"},
	{"Suzuki", "Swift", "Grey"},
}

// DemoVehicle is stable per plate.
func DemoVehicle(plate string) entities.Vehicle {
	h := xxhash.Sum64String(plate)
	d := demoFleet[h%uint64(len(demoFleet))]
	return entities.Vehicle{
		Plate: plate,
		Make:  d.make,
		Model: d.model,
		Color: d.color,
		Year:  strconv.Itoa(2005 + int(h>>8%18)),
		Fuel:  "Petrol",
		Demo:  true,
	}
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
