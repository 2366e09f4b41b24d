package api

// LoginResponse carries the pre-verification user token issued by a
// login call.
type LoginResponse struct {
	UserToken string `json:"user_token"`
}

// Contact is a verified or unverified point of contact on an account.
type Contact struct {
	Value    string `json:"value"`
	Verified bool   `json:"verified"`
}

// Account represents the account attached to a session.
type Account struct {
	Name          string      `json:"name"`
	Email         Contact     `json:"email"`
	Phone         Contact     `json:"phone"`
	Networks      NetworkList `json:"networks"`
	PremiumStatus string      `json:"premium_status"`
}

// NetworkList wraps the networks collection as the account endpoint
// returns it.
type NetworkList struct {
	Count int       `json:"count"`
	Data  []Network `json:"data"`
}

// Network represents one mesh network. The URL is the only identifier
// the API exposes; see NetworkID.
type Network struct {
	URL     string `json:"url"`
	Name    string `json:"name"`
	Created string `json:"created"`
}

// IPv6Address is one address/scope pair on a device.
type IPv6Address struct {
	Address string `json:"address"`
	Scope   string `json:"scope"`
}

// ProfileRef is the profile summary embedded in a device.
type ProfileRef struct {
	URL    string `json:"url"`
	Name   string `json:"name"`
	Paused bool   `json:"paused"`
}

// Device represents a client device the network has seen.
type Device struct {
	URL           string        `json:"url"`
	MAC           string        `json:"mac"`
	Hostname      string        `json:"hostname"`
	Nickname      string        `json:"nickname"`
	IP            string        `json:"ip"`
	IPv6Addresses []IPv6Address `json:"ipv6_addresses"`
	Connected     bool          `json:"connected"`
	Paused        bool          `json:"paused"`
	Blocked       bool          `json:"blocked"`
	IsGuest       bool          `json:"is_guest"`
	IsPrivate     bool          `json:"is_private"`
	Profile       *ProfileRef   `json:"profile,omitempty"`
}

// DisplayName returns the best human-readable name for a device:
// nickname, then hostname, then the MAC address.
func (d Device) DisplayName() string {
	if d.Nickname != "" {
		return d.Nickname
	}
	if d.Hostname != "" {
		return d.Hostname
	}
	return d.MAC
}

// DisplayIP returns the device's IPv4 address when it has one, else the
// first non-link-scoped IPv6 address, else the first IPv6 address, else
// "No IP".
func (d Device) DisplayIP() string {
	if d.IP != "" {
		return d.IP
	}
	for _, a := range d.IPv6Addresses {
		if a.Scope != "link" {
			return a.Address
		}
	}
	if len(d.IPv6Addresses) > 0 {
		return d.IPv6Addresses[0].Address
	}
	return "No IP"
}

// Profile represents a grouping of devices under shared pause control.
type Profile struct {
	URL    string `json:"url"`
	Name   string `json:"name"`
	Paused bool   `json:"paused"`
}

// ProfileDetails is a Profile along with its member devices.
type ProfileDetails struct {
	Profile
	Devices []Device `json:"devices"`
}

// Eero represents one physical node of the mesh.
type Eero struct {
	URL              string `json:"url"`
	Serial           string `json:"serial"`
	Location         string `json:"location"`
	Gateway          bool   `json:"gateway"`
	IP               string `json:"ip_address"`
	Model            string `json:"model"`
	OSVersion        string `json:"os_version"`
	Wired            bool   `json:"wired"`
	State            string `json:"state"`
	Bars             int    `json:"bars"`
	ConnectedClients int    `json:"connected_clients_count"`
	HeartbeatOK      bool   `json:"heartbeat_ok"`
}

// GuestNetwork is the per-network guest SSID. There is exactly one.
type GuestNetwork struct {
	URL      string `json:"url"`
	Enabled  bool   `json:"enabled"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// Reservation is one DHCP address reservation.
type Reservation struct {
	URL         string `json:"url"`
	IP          string `json:"ip"`
	MAC         string `json:"mac"`
	Description string `json:"description"`
}

// PortForward is one port forwarding rule.
type PortForward struct {
	URL         string `json:"url"`
	IP          string `json:"ip"`
	GatewayPort int    `json:"gateway_port"`
	ClientPort  int    `json:"client_port"`
	Protocol    string `json:"protocol"`
	Enabled     bool   `json:"enabled"`
	Description string `json:"description,omitempty"`
}
