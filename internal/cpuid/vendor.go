package cpuid

var vendorNames = map[string]string{
	"AuthenticAMD": "AMD",
	"GenuineIntel": "Intel",
	"CyrixInstead": "Cyrix",
	"CentaurHauls": "Centaur",
	"RiseRiseRise": "Rise",
	"GenuineTMx86": "Transmeta",
	"SiS SiS SiS ": "SiS",
	"UMC UMC UMC ": "UMC",
	"VIA VIA VIA ": "VIA",
	"VMwareVMware": "VMware",
}

// VendorName maps a 12-byte vendor identification string to its short name.
// Unknown identifiers are returned unchanged.
func VendorName(vendorID string) string {
	if name, ok := vendorNames[vendorID]; ok {
		return name
	}
	return vendorID
}
