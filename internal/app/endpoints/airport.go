package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"

	"github.com/nordavia/airport-aip-service/internal/app/dto"
)

type AirportService interface {
	LookupAirport(ctx context.Context, req dto.LookupRequest) (dto.AirportRecord, error)
}

type AirportEndpoint struct {
	LookupAirport endpoint.Endpoint
}

func MakeAirportEndpoint(service AirportService) AirportEndpoint {
	return AirportEndpoint{
		LookupAirport: makeLookupAirportEndpoint(service),
	}
}

func makeLookupAirportEndpoint(service AirportService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.LookupRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		record, err := service.LookupAirport(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("lookup service: %w", err)
		}

		return record, nil
	}
}
