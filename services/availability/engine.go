package availability

import (
	"context"
	"fmt"
	"sync"
	"time"

	"backbar/models"
	"backbar/services/meevo"
	"backbar/utils"

	"go.uber.org/zap"
)

const defaultPreviewCap = 10

func failure(message string) *models.CheckResponse {
	return &models.CheckResponse{Success: false, Error: message}
}

func (e *DefaultAvailabilityEngine) previewCap() int {
	if e.PreviewCap > 0 {
		return e.PreviewCap
	}
	return defaultPreviewCap
}

func (e *DefaultAvailabilityEngine) maxGap() int {
	if e.MaxGapMinutes > 0 {
		return e.MaxGapMinutes
	}
	return 10
}

// resolveDateRange picks the date scope for a check: a specific date, an
// explicit start/end pair, or today through three days out.
func resolveDateRange(req models.CheckRequest) models.DateRange {
	if req.SpecificDate != "" {
		return models.DateRange{Start: req.SpecificDate, End: req.SpecificDate}
	}
	if req.DateStart != "" && req.DateEnd != "" {
		return models.DateRange{Start: req.DateStart, End: req.DateEnd}
	}
	today := time.Now()
	return models.DateRange{
		Start: today.Format("2006-01-02"),
		End:   today.AddDate(0, 0, 3).Format("2006-01-02"),
	}
}

// CheckBackToBack answers whether the stylist can take two guests for two
// different services back to back inside the requested date scope. Every
// outcome, including every failure, comes back as a structured response.
func (e *DefaultAvailabilityEngine) CheckBackToBack(ctx context.Context, req models.CheckRequest) *models.CheckResponse {
	logger := utils.GetLogger()

	token, err := e.Auth.Token(ctx)
	if err != nil {
		logger.Error("availability: token acquisition failed", zap.Error(err))
		return failure(fmt.Sprintf("upstream authentication failed: %v", err))
	}

	roster, err := e.Directory.ActiveEmployees(ctx, token)
	if err != nil {
		logger.Warn("availability: roster fetch failed, continuing with empty roster", zap.Error(err))
		roster = &models.Roster{}
	}
	if roster == nil {
		roster = &models.Roster{}
	}

	locationID := req.LocationID
	if locationID == "" {
		locationID = e.LocationID
	}

	stylistInput := req.StylistID
	if stylistInput == "" {
		stylistInput = req.StylistName
	}
	stylistID := meevo.ResolveStylist(stylistInput, roster)
	if stylistID == "" {
		resp := failure("Missing or invalid stylist. Provide stylist_id or stylist_name")
		resp.AvailableStylists = roster.Names()
		return resp
	}

	stylistName := "Stylist"
	if emp, ok := roster.ByID(stylistID); ok {
		stylistName = emp.Name
	}

	if len(req.Services) < 2 {
		return failure("services array required with at least 2 services (one per guest)")
	}

	serviceIDs := make([]string, len(req.Services))
	serviceNames := make([]string, len(req.Services))
	for i, svc := range req.Services {
		serviceIDs[i] = e.Services.Resolve(svc)
		serviceNames[i] = meevo.DisplayServiceName(svc)
		if serviceIDs[i] == "" {
			return failure("Invalid service name(s) provided")
		}
	}

	dates := resolveDateRange(req)
	logger.Info("availability: checking back-to-back",
		zap.String("stylist", stylistName),
		zap.Strings("services", serviceNames),
		zap.String("from", dates.Start),
		zap.String("to", dates.End))

	// Per-service scan+merge pipelines run concurrently; pairing needs every
	// timeline complete, so wait for all of them.
	timelines := make([][]models.Slot, len(serviceIDs))
	var wg sync.WaitGroup
	for i := range serviceIDs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			slots := e.scanService(ctx, token, stylistID, serviceIDs[i], locationID, dates)
			timelines[i] = FilterByTimeOfDay(slots, req.TimePreference)
		}(i)
	}
	wg.Wait()

	// Pairing runs across the first two services only; additional timelines
	// are still computed and returned.
	options := PairBackToBack(timelines[0], timelines[1], serviceNames[0], serviceNames[1], e.maxGap())
	hasBackToBack := len(options) > 0

	limit := e.previewCap()
	byService := make(map[string][]models.Slot, len(serviceNames))
	for i, name := range serviceNames {
		byService[name] = capSlots(timelines[i], limit)
	}

	resp := &models.CheckResponse{
		Success:               true,
		StylistName:           stylistName,
		StylistID:             stylistID,
		ServicesSearched:      serviceNames,
		DateRange:             &dates,
		BackToBackAvailable:   hasBackToBack,
		BackToBackOptions:     capOptions(options, limit),
		AvailabilityByService: byService,
	}

	if hasBackToBack {
		resp.EarliestOption = &options[0]
		resp.Message = fmt.Sprintf("Found %d back-to-back options with %s. Earliest: %s",
			len(options), stylistName, options[0].Guest1.FormattedFull)
	} else {
		resp.Message = fmt.Sprintf("%s has no back-to-back availability for these services in the date range", stylistName)
	}
	if len(req.Services) > 2 {
		resp.PairingNote = "back-to-back pairing covers the first two services only; remaining timelines are informational"
	}

	logger.Info("availability: check complete",
		zap.String("stylist", stylistName),
		zap.Int("options", len(options)))
	return resp
}

func capSlots(slots []models.Slot, n int) []models.Slot {
	if len(slots) > n {
		return slots[:n]
	}
	return slots
}

func capOptions(options []models.BackToBackOption, n int) []models.BackToBackOption {
	if len(options) > n {
		return options[:n]
	}
	return options
}
