package endpoints

// Endpoints collects every endpoint group the router exposes.
type Endpoints struct {
	AirportEndpoint AirportEndpoint
}

func NewEndpoints(service AirportService) Endpoints {
	return Endpoints{
		AirportEndpoint: MakeAirportEndpoint(service),
	}
}
