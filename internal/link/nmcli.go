// internal/link/nmcli.go
package link

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/tamzrod/quakelight/internal/config"
)

// Runner executes an external command and returns its stdout.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		// Never echo argv: the join command line carries the password.
		return nil, fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(stderr.String()))
	}
	return out, nil
}

// Nmcli joins Wi-Fi networks through NetworkManager.
type Nmcli struct {
	Interface string // empty = let NetworkManager pick
	Run       Runner
}

func NewNmcli(iface string) *Nmcli {
	return &Nmcli{Interface: iface, Run: execRunner}
}

// Join only starts activation (--wait 0) and returns at once.
// Association progress is observed through Up.
func (n *Nmcli) Join(ctx context.Context, creds config.Credentials) error {
	args := []string{"--wait", "0", "device", "wifi", "connect", creds.SSID, "password", string(creds.Password)}
	if n.Interface != "" {
		args = append(args, "ifname", n.Interface)
	}
	if _, err := n.Run(ctx, "nmcli", args...); err != nil {
		return fmt.Errorf("nmcli join %q: %w", creds.SSID, err)
	}
	return nil
}

func (n *Nmcli) Up(ctx context.Context) (bool, error) {
	if n.Interface != "" {
		out, err := n.Run(ctx, "nmcli", "-t", "-f", "GENERAL.STATE", "device", "show", n.Interface)
		if err != nil {
			return false, err
		}
		// GENERAL.STATE:100 (connected)
		return strings.Contains(string(out), "(connected)"), nil
	}

	out, err := n.Run(ctx, "nmcli", "-t", "-f", "STATE", "general")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(string(out)) == "connected", nil
}

func (n *Nmcli) Describe(ctx context.Context) (Info, error) {
	iface := n.Interface
	if iface == "" {
		out, err := n.Run(ctx, "nmcli", "-t", "-f", "DEVICE,TYPE,STATE", "device")
		if err != nil {
			return Info{}, err
		}
		iface = firstConnectedWifi(out)
		if iface == "" {
			return Info{}, errors.New("nmcli: no connected wifi device")
		}
	}

	out, err := n.Run(ctx, "nmcli", "-t", "-f", "IP4.ADDRESS", "device", "show", iface)
	if err != nil {
		return Info{Interface: iface}, err
	}
	return Info{Interface: iface, Address: firstValue(out)}, nil
}

// firstConnectedWifi parses "wlan0:wifi:connected" lines.
func firstConnectedWifi(out []byte) string {
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		parts := strings.Split(sc.Text(), ":")
		if len(parts) >= 3 && parts[1] == "wifi" && parts[2] == "connected" {
			return parts[0]
		}
	}
	return ""
}

// firstValue parses "IP4.ADDRESS[1]:192.168.1.20/24".
func firstValue(out []byte) string {
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		if _, v, ok := strings.Cut(sc.Text(), ":"); ok && v != "" {
			return v
		}
	}
	return ""
}
