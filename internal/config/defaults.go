// internal/config/defaults.go
package config

const (
	LinkNmcli = "nmcli"
	LinkProbe = "probe"

	DriverModbus = "modbus"
	DriverLog    = "log"

	TransportTCP = "tcp"
	TransportRTU = "rtu"

	OutputStatus = "status"
	OutputRed    = "red"
	OutputYellow = "yellow"
	OutputGreen  = "green"
)

// OutputIDs lists every output the monitor drives, in a stable order.
var OutputIDs = []string{OutputStatus, OutputRed, OutputYellow, OutputGreen}

// Default returns the built-in configuration.
// It matches the reference deployment: USGS event service, Malibu area,
// 200 km radius, 48 hour window, ~1000 s between cycles, dry-run outputs.
func Default() *Config {
	return &Config{
		Link: LinkConfig{
			Driver:  LinkNmcli,
			BlinkMs: 500,
		},
		Query: QueryConfig{
			BaseURL:     "https://earthquake.usgs.gov/fdsnws/event/1/query",
			Latitude:    34.020728,
			Longitude:   -118.692602,
			RadiusKm:    200,
			WindowHours: 48,
			TimeoutMs:   30000,
		},
		Poll: PollConfig{
			IntervalMs: 1000 * 1000,
		},
		Indicator: IndicatorConfig{
			Device: DeviceConfig{
				Transport: TransportTCP,
				UnitID:    1,
				TimeoutMs: 2000,
				BaudRate:  9600,
				DataBits:  8,
				Parity:    "N",
				StopBits:  1,
			},
			Outputs: []OutputConfig{
				{ID: OutputStatus, Driver: DriverLog},
				{ID: OutputRed, Driver: DriverLog},
				{ID: OutputYellow, Driver: DriverLog},
				{ID: OutputGreen, Driver: DriverLog},
			},
		},
		Log: LogConfig{
			Level:   "info",
			Handler: "text",
		},
	}
}
