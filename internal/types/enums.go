package types

type LayoutPreset string

const (
	// LayoutPresetDefault is the DappTools-style layout: conventional
	// directories are discovered by probing under the project root.
	LayoutPresetDefault LayoutPreset = "default"
	// LayoutPresetHardhat fixes contracts/, artifacts/ and node_modules
	// without probing.
	LayoutPresetHardhat LayoutPreset = "hardhat"
)

type EVMVersion string

const (
	EVMVersionHomestead        EVMVersion = "homestead"
	EVMVersionTangerineWhistle EVMVersion = "tangerineWhistle"
	EVMVersionSpuriousDragon   EVMVersion = "spuriousDragon"
	EVMVersionByzantium        EVMVersion = "byzantium"
	EVMVersionConstantinople   EVMVersion = "constantinople"
	EVMVersionPetersburg       EVMVersion = "petersburg"
	EVMVersionIstanbul         EVMVersion = "istanbul"
	EVMVersionBerlin           EVMVersion = "berlin"
	EVMVersionLondon           EVMVersion = "london"
)
