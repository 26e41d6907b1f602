// internal/config/config.go
package config

type Config struct {
	Link      LinkConfig      `yaml:"link"`
	Query     QueryConfig     `yaml:"query"`
	Poll      PollConfig      `yaml:"poll"`
	Indicator IndicatorConfig `yaml:"indicator"`
	Log       LogConfig       `yaml:"log"`

	// Credentials never come from the file.
	Credentials Credentials `yaml:"-"`
}

// ---- LINK ----

type LinkConfig struct {
	Driver    string `yaml:"driver"`     // nmcli | probe
	Interface string `yaml:"interface"`  // nmcli only, optional
	ProbeAddr string `yaml:"probe_addr"` // probe only, host:port
	TimeoutMs int    `yaml:"timeout_ms"` // 0 = wait forever
	BlinkMs   int    `yaml:"blink_ms"`   // connecting feedback cadence
}

// Credentials identify the network to join.
type Credentials struct {
	SSID     string
	Password Secret
}

// Secret is a string that does not print itself.
type Secret string

func (s Secret) String() string {
	if s == "" {
		return ""
	}
	return "******"
}

// ---- QUERY ----

type QueryConfig struct {
	BaseURL     string  `yaml:"base_url"`
	Latitude    float64 `yaml:"latitude"`
	Longitude   float64 `yaml:"longitude"`
	RadiusKm    float64 `yaml:"radius_km"`
	WindowHours int     `yaml:"window_hours"`
	TimeoutMs   int     `yaml:"timeout_ms"`
}

// ---- POLL ----

type PollConfig struct {
	IntervalMs int `yaml:"interval_ms"`
}

// ---- INDICATOR ----

type IndicatorConfig struct {
	Device  DeviceConfig   `yaml:"device"`
	Outputs []OutputConfig `yaml:"outputs"`

	// Status block mirror (optional, opt-in, needs a modbus device)
	Status *StatusConfig `yaml:"status"`
}

// DeviceConfig describes the Modbus I/O module carrying the outputs.
type DeviceConfig struct {
	Transport string `yaml:"transport"` // tcp | rtu
	Endpoint  string `yaml:"endpoint"`  // host:port (tcp) or serial device (rtu)
	UnitID    uint8  `yaml:"unit_id"`
	TimeoutMs int    `yaml:"timeout_ms"`

	// rtu only
	BaudRate int    `yaml:"baud_rate"`
	DataBits int    `yaml:"data_bits"`
	Parity   string `yaml:"parity"` // N | E | O
	StopBits int    `yaml:"stop_bits"`
}

type OutputConfig struct {
	ID     string `yaml:"id"`     // status | red | yellow | green
	Driver string `yaml:"driver"` // modbus | log
	Coil   uint16 `yaml:"coil"`

	// nil => role default (status is active-low, the rest active-high)
	ActiveLow *bool `yaml:"active_low"`
}

type StatusConfig struct {
	Address uint16 `yaml:"address"` // first holding register of the block
}

// ---- LOG ----

type LogConfig struct {
	Level   string `yaml:"level"`
	Handler string `yaml:"handler"` // text | json
}
