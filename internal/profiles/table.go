package profiles

import "github.com/InfraSecConsult/surveillance-detector-go/lib/model"

var (
	dataCellular       = []string{"IMSI and IMEI", "Approximate location", "Call and SMS metadata", "Possibly call and SMS content"}
	dataGNSS           = []string{"Falsified position and time"}
	dataALPR           = []string{"License plate", "Vehicle make, color and features", "Time and location of passage"}
	dataTraffic        = []string{"License plate", "Vehicle speed", "Time and location"}
	dataAudio          = []string{"Ambient audio", "Location of sound events"}
	dataCrossDevice    = []string{"Device linkage across screens", "Store visits", "Media exposure"}
	dataVideo          = []string{"Video footage", "Faces and bodies", "Movement patterns"}
	dataPresence       = []string{"Presence of law enforcement nearby"}
	dataForensics      = []string{"Full phone contents", "Messages and photos", "Account credentials"}
	dataTracker        = []string{"Continuous location history"}
	dataBeacon         = []string{"In-store presence through apps", "Dwell time"}
	dataFootfall       = []string{"Device MAC addresses", "Visit frequency", "Dwell time"}
	dataHome           = []string{"Entry and exit events", "Video footage"}
	dataBiometric      = []string{"Face geometry", "Identity matches", "Movement patterns"}
	dataSmartCity      = []string{"Video", "Audio", "Wireless device identifiers", "Pedestrian and vehicle counts"}
	dataNetwork        = []string{"Network traffic", "Credentials", "Visited sites"}
	dataNone           = []string{"None directly; disrupts device use"}
	recsCellular       = []string{"Switch the phone to LTE or 5G only mode", "Use end-to-end encrypted messaging and calls", "Enable airplane mode in sensitive situations", "Record time and location and report to the carrier"}
	recsGNSS           = []string{"Cross-check position against cellular or WiFi location", "Do not rely on GNSS time for security decisions", "Report persistent interference to the spectrum regulator"}
	recsALPR           = []string{"Expect your vehicle passage to be logged", "Request the agency's ALPR retention policy", "Support local surveillance oversight ordinances"}
	recsTraffic        = []string{"Obey traffic laws in the monitored area"}
	recsAudio          = []string{"Avoid sensitive conversations near the sensor", "Ask local officials about audio retention"}
	recsUltrasonic     = []string{"Revoke microphone permission from apps that do not need it", "Review apps with beacon SDKs"}
	recsLawEnforcement = []string{"Know your rights when interacting with police", "Do not consent to device searches without counsel"}
	recsForensics      = []string{"Use a strong alphanumeric passcode", "Disable biometric unlock before encounters with authorities", "Keep the device updated"}
	recsDrone          = []string{"Note the drone's direction and operator location", "Check local drone and privacy rules"}
	recsTracker        = []string{"Use your phone's unknown tracker scan", "Search bags, vehicle and clothing for the tracker", "If you feel unsafe, contact law enforcement before disabling it"}
	recsTelematics     = []string{"Ask the vehicle owner or employer about tracking"}
	recsBeacon         = []string{"Disable Bluetooth scanning for apps that do not need it", "Review app location permissions"}
	recsConsumerCamera = []string{"Assume you may be recorded near residences", "Ask hosts about cameras in rentals"}
	recsCCTV           = []string{"Assume you are being recorded", "Look up the operator's public surveillance policy"}
	recsSmartCity      = []string{"Check the municipality's surveillance technology inventory"}
	recsHidden         = []string{"Sweep the room with a flashlight for lens reflections", "Unplug unfamiliar devices", "Report the device to the property owner or police"}
	recsNetwork        = []string{"Do not connect to the network", "Forget open networks from saved lists", "Use a VPN on untrusted networks"}
	recsBLESpam        = []string{"Ignore unexpected pairing popups", "Turn Bluetooth off until the spam stops"}
	recsSatellite      = []string{"Verify you did not trigger satellite mode", "Restart the modem if the link persists"}
	recsGeneric        = []string{"Monitor for repeated sightings", "Record time and location of the detection"}
)

// profileTable holds the curated profiles. Device types absent from it resolve
// to the generated default profile.
var profileTable = []model.DeviceTypeProfile{
	{
		DeviceType:       model.DeviceTypeCellSiteSimulator,
		Name:             "Cell-Site Simulator",
		Category:         "Cellular Interception",
		Description:      "Impersonates a cell tower to force nearby phones to connect, revealing subscriber identifiers and location.",
		TypicalOperator:  "Law enforcement, intelligence agencies",
		LegalFramework:   "US federal policy requires a warrant; private use is prohibited.",
		DataCollected:    dataCellular,
		PrivacyImpact:    model.PrivacyImpactCritical,
		Recommendations:  recsCellular,
		BaseThreatWeight: 95,
		Modifiers:        []model.ThreatModifier{{Condition: model.ConditionDowngrade, Delta: 15}, {Condition: model.ConditionNullCipher, Delta: 20}, {Condition: model.ConditionNearProtest, Delta: 10}},
	},
	{
		DeviceType:       model.DeviceTypeFakeBaseStation2G,
		Name:             "Fake 2G Base Station",
		Category:         "Cellular Interception",
		Description:      "Rogue GSM base station exploiting the missing network authentication of 2G to intercept calls and SMS.",
		TypicalOperator:  "Criminals, law enforcement",
		LegalFramework:   "Interception without a court order is unlawful in most jurisdictions.",
		DataCollected:    dataCellular,
		PrivacyImpact:    model.PrivacyImpactCritical,
		Recommendations:  recsCellular,
		BaseThreatWeight: 95,
		Modifiers:        []model.ThreatModifier{{Condition: model.ConditionNullCipher, Delta: 20}, {Condition: model.ConditionDowngrade, Delta: 10}},
	},
	{
		DeviceType:       model.DeviceTypeRogueFemtocell,
		Name:             "Rogue Femtocell",
		Category:         "Cellular Interception",
		Description:      "Modified small cell that relays and can inspect traffic of handsets attached to it.",
		TypicalOperator:  "Researchers, criminals",
		LegalFramework:   "Operating unlicensed cellular equipment violates spectrum regulation.",
		DataCollected:    dataCellular,
		PrivacyImpact:    model.PrivacyImpactHigh,
		Recommendations:  recsCellular,
		BaseThreatWeight: 80,
	},
	{
		DeviceType:       model.DeviceTypeCellularBaitTower,
		Name:             "Cellular Bait Tower",
		Category:         "Cellular Interception",
		Description:      "Transmitter advertising an unusually strong cell to attract handsets for identifier collection.",
		TypicalOperator:  "Unknown",
		LegalFramework:   "Unlicensed transmission on cellular bands is prohibited.",
		DataCollected:    dataCellular,
		PrivacyImpact:    model.PrivacyImpactHigh,
		Recommendations:  recsCellular,
		BaseThreatWeight: 75,
	},
	{
		DeviceType:       model.DeviceTypeGNSSSpoofer,
		Name:             "GNSS Spoofer",
		Category:         "GNSS Interference",
		Description:      "Broadcasts counterfeit satellite navigation signals so receivers compute a false position or time.",
		TypicalOperator:  "Criminals, state actors, researchers",
		LegalFramework:   "Transmitting on GNSS bands is illegal for unlicensed parties.",
		DataCollected:    dataGNSS,
		PrivacyImpact:    model.PrivacyImpactHigh,
		Recommendations:  recsGNSS,
		BaseThreatWeight: 85,
		Modifiers:        []model.ThreatModifier{{Condition: model.ConditionStationary, Delta: -10}},
	},
	{
		DeviceType:       model.DeviceTypeGNSSJammer,
		Name:             "GNSS Jammer",
		Category:         "GNSS Interference",
		Description:      "Drowns satellite navigation signals in noise, often to defeat vehicle trackers.",
		TypicalOperator:  "Vehicle thieves, drivers evading fleet tracking",
		LegalFramework:   "Sale and use of jammers is illegal in the US and EU.",
		DataCollected:    dataGNSS,
		PrivacyImpact:    model.PrivacyImpactMedium,
		Recommendations:  recsGNSS,
		BaseThreatWeight: 80,
	},
	{
		DeviceType:       model.DeviceTypeALPRCamera,
		Name:             "ALPR Camera",
		Category:         "License Plate Recognition",
		Description:      "Automated license plate reader that logs every passing vehicle with time and location.",
		TypicalOperator:  "Police departments, HOAs, private businesses",
		LegalFramework:   "Retention periods vary by state; data is frequently shared across agencies.",
		DataCollected:    dataALPR,
		PrivacyImpact:    model.PrivacyImpactHigh,
		Recommendations:  recsALPR,
		BaseThreatWeight: 70,
		Modifiers:        []model.ThreatModifier{{Condition: model.ConditionNearResidence, Delta: 10}},
	},
	{
		DeviceType:       model.DeviceTypeFlockSafetyCamera,
		Name:             "Flock Safety Camera",
		Category:         "License Plate Recognition",
		Description:      "Solar-powered ALPR camera that captures plates and vehicle fingerprints into a shared national network.",
		TypicalOperator:  "Police departments, HOAs, retailers",
		LegalFramework:   "Subject to state ALPR statutes; data shared through the Flock network.",
		DataCollected:    dataALPR,
		PrivacyImpact:    model.PrivacyImpactHigh,
		Recommendations:  recsALPR,
		BaseThreatWeight: 75,
		Modifiers:        []model.ThreatModifier{{Condition: model.ConditionNearResidence, Delta: 10}, {Condition: model.ConditionRepeatedSights, Delta: 5}},
	},
	{
		DeviceType:       model.DeviceTypePenguinSurveillance,
		Name:             "Penguin Surveillance Unit",
		Category:         "License Plate Recognition",
		Description:      "Mobile surveillance trailer combining cameras and plate readers.",
		TypicalOperator:  "Police departments, private security",
		LegalFramework:   "Deployment rules vary by jurisdiction.",
		DataCollected:    dataALPR,
		PrivacyImpact:    model.PrivacyImpactHigh,
		Recommendations:  recsALPR,
		BaseThreatWeight: 70,
	},
	{
		DeviceType:       model.DeviceTypeMobileALPR,
		Name:             "Mobile ALPR",
		Category:         "License Plate Recognition",
		Description:      "Vehicle-mounted plate reader scanning parked and passing cars.",
		TypicalOperator:  "Police, repossession agents, parking enforcement",
		LegalFramework:   "Repossession industry ALPR data is largely unregulated.",
		DataCollected:    dataALPR,
		PrivacyImpact:    model.PrivacyImpactHigh,
		Recommendations:  recsALPR,
		BaseThreatWeight: 70,
		Modifiers:        []model.ThreatModifier{{Condition: model.ConditionFollowing, Delta: 20}},
	},
	{
		DeviceType:       model.DeviceTypeTrafficCamera,
		Name:             "Traffic Camera",
		Category:         "Traffic Enforcement",
		Description:      "Fixed camera monitoring road traffic flow.",
		TypicalOperator:  "Transportation departments",
		LegalFramework:   "Generally permitted for traffic management.",
		DataCollected:    dataTraffic,
		PrivacyImpact:    model.PrivacyImpactLow,
		Recommendations:  recsTraffic,
		BaseThreatWeight: 25,
	},
	{
		DeviceType:       model.DeviceTypeSpeedCamera,
		Name:             "Speed Camera",
		Category:         "Traffic Enforcement",
		Description:      "Automated speed enforcement camera.",
		TypicalOperator:  "Municipalities",
		LegalFramework:   "Authorised by state or local law where deployed.",
		DataCollected:    dataTraffic,
		PrivacyImpact:    model.PrivacyImpactLow,
		Recommendations:  recsTraffic,
		BaseThreatWeight: 25,
	},
	{
		DeviceType:       model.DeviceTypeRedLightCamera,
		Name:             "Red Light Camera",
		Category:         "Traffic Enforcement",
		Description:      "Camera recording vehicles entering intersections on red.",
		TypicalOperator:  "Municipalities",
		LegalFramework:   "Authorised by state or local law where deployed.",
		DataCollected:    dataTraffic,
		PrivacyImpact:    model.PrivacyImpactLow,
		Recommendations:  recsTraffic,
		BaseThreatWeight: 25,
	},
	{
		DeviceType:       model.DeviceTypeTollReader,
		Name:             "Toll Reader",
		Category:         "Traffic Enforcement",
		Description:      "RFID and camera gantry reading toll transponders and plates.",
		TypicalOperator:  "Toll authorities",
		LegalFramework:   "Data may be subpoenaed by law enforcement.",
		DataCollected:    dataTraffic,
		PrivacyImpact:    model.PrivacyImpactMedium,
		Recommendations:  recsTraffic,
		BaseThreatWeight: 35,
	},
	{
		DeviceType:       model.DeviceTypeGunshotDetector,
		Name:             "Gunshot Detector",
		Category:         "Acoustic Surveillance",
		Description:      "Networked microphone array triangulating gunfire, which can also capture voices.",
		TypicalOperator:  "Police departments",
		LegalFramework:   "Audio retention and use as evidence is contested in courts.",
		DataCollected:    dataAudio,
		PrivacyImpact:    model.PrivacyImpactHigh,
		Recommendations:  recsAudio,
		BaseThreatWeight: 60,
	},
	{
		DeviceType:       model.DeviceTypeRavenAudioSensor,
		Name:             "Raven Audio Sensor",
		Category:         "Acoustic Surveillance",
		Description:      "Flock acoustic sensor paired with ALPR infrastructure.",
		TypicalOperator:  "Police departments",
		LegalFramework:   "Subject to local surveillance ordinances.",
		DataCollected:    dataAudio,
		PrivacyImpact:    model.PrivacyImpactHigh,
		Recommendations:  recsAudio,
		BaseThreatWeight: 65,
	},
	{
		DeviceType:       model.DeviceTypeUltrasonicBeacon,
		Name:             "Ultrasonic Beacon",
		Category:         "Acoustic Surveillance",
		Description:      "Near-ultrasonic tones used to link devices across screens and stores for ad tracking.",
		TypicalOperator:  "Advertisers, retailers",
		LegalFramework:   "FTC has warned apps that listen for beacons without disclosure.",
		DataCollected:    dataCrossDevice,
		PrivacyImpact:    model.PrivacyImpactMedium,
		Recommendations:  recsUltrasonic,
		BaseThreatWeight: 50,
	},
	{
		DeviceType:       model.DeviceTypeAudioSurveillance,
		Name:             "Audio Surveillance Device",
		Category:         "Acoustic Surveillance",
		Description:      "Device capable of capturing ambient conversation.",
		TypicalOperator:  "Unknown",
		LegalFramework:   "Recording conversations may require all-party consent.",
		DataCollected:    dataAudio,
		PrivacyImpact:    model.PrivacyImpactHigh,
		Recommendations:  recsAudio,
		BaseThreatWeight: 65,
	},
	{
		DeviceType:       model.DeviceTypeBodyCamera,
		Name:             "Body-Worn Camera",
		Category:         "Law Enforcement Equipment",
		Description:      "Officer-worn camera recording video and audio.",
		TypicalOperator:  "Police departments",
		LegalFramework:   "Release rules governed by state public-records law.",
		DataCollected:    dataVideo,
		PrivacyImpact:    model.PrivacyImpactMedium,
		Recommendations:  recsLawEnforcement,
		BaseThreatWeight: 50,
	},
	{
		DeviceType:       model.DeviceTypePoliceRadio,
		Name:             "Police Radio",
		Category:         "Law Enforcement Equipment",
		Description:      "Public-safety radio indicating police presence.",
		TypicalOperator:  "Police departments",
		LegalFramework:   "Licensed public-safety spectrum.",
		DataCollected:    dataPresence,
		PrivacyImpact:    model.PrivacyImpactLow,
		Recommendations:  recsLawEnforcement,
		BaseThreatWeight: 35,
	},
	{
		DeviceType:       model.DeviceTypePoliceVehicle,
		Name:             "Police Vehicle",
		Category:         "Law Enforcement Equipment",
		Description:      "Vehicle carrying in-car video, modems and plate readers.",
		TypicalOperator:  "Police departments",
		LegalFramework:   "Equipment use governed by department policy.",
		DataCollected:    dataPresence,
		PrivacyImpact:    model.PrivacyImpactMedium,
		Recommendations:  recsLawEnforcement,
		BaseThreatWeight: 45,
		Modifiers:        []model.ThreatModifier{{Condition: model.ConditionFollowing, Delta: 25}},
	},
	{
		DeviceType:       model.DeviceTypeAxonDevice,
		Name:             "Axon Device",
		Category:         "Law Enforcement Equipment",
		Description:      "Axon body camera, dock or TASER broadcasting its presence.",
		TypicalOperator:  "Police departments",
		LegalFramework:   "Evidence uploaded to Axon cloud services.",
		DataCollected:    dataVideo,
		PrivacyImpact:    model.PrivacyImpactMedium,
		Recommendations:  recsLawEnforcement,
		BaseThreatWeight: 55,
	},
	{
		DeviceType:       model.DeviceTypeMotorolaPoliceTech,
		Name:             "Motorola Solutions Device",
		Category:         "Law Enforcement Equipment",
		Description:      "Motorola public-safety radio or camera.",
		TypicalOperator:  "Police departments",
		LegalFramework:   "Licensed public-safety equipment.",
		DataCollected:    dataPresence,
		PrivacyImpact:    model.PrivacyImpactMedium,
		Recommendations:  recsLawEnforcement,
		BaseThreatWeight: 45,
	},
	{
		DeviceType:       model.DeviceTypeL3HarrisSurveillance,
		Name:             "L3Harris Equipment",
		Category:         "Law Enforcement Equipment",
		Description:      "L3Harris radio or interception equipment; the vendor also built early cell-site simulators.",
		TypicalOperator:  "Law enforcement, military",
		LegalFramework:   "Interception products restricted to government buyers.",
		DataCollected:    dataCellular,
		PrivacyImpact:    model.PrivacyImpactHigh,
		Recommendations:  recsLawEnforcement,
		BaseThreatWeight: 70,
	},
	{
		DeviceType:       model.DeviceTypeCellebriteForensics,
		Name:             "Cellebrite Forensic Kit",
		Category:         "Forensics",
		Description:      "Mobile device forensic extraction tool able to copy a phone's full contents.",
		TypicalOperator:  "Law enforcement, border agencies",
		LegalFramework:   "Searches generally require a warrant or consent.",
		DataCollected:    dataForensics,
		PrivacyImpact:    model.PrivacyImpactCritical,
		Recommendations:  recsForensics,
		BaseThreatWeight: 90,
	},
	{
		DeviceType:       model.DeviceTypeGrayKeyForensics,
		Name:             "GrayKey",
		Category:         "Forensics",
		Description:      "Forensic unlock and extraction device for smartphones.",
		TypicalOperator:  "Law enforcement",
		LegalFramework:   "Searches generally require a warrant or consent.",
		DataCollected:    dataForensics,
		PrivacyImpact:    model.PrivacyImpactCritical,
		Recommendations:  recsForensics,
		BaseThreatWeight: 90,
	},
	{
		DeviceType:       model.DeviceTypeSurveillanceVan,
		Name:             "Surveillance Van",
		Category:         "Law Enforcement Equipment",
		Description:      "Vehicle hosting interception or observation equipment.",
		TypicalOperator:  "Law enforcement, private investigators",
		LegalFramework:   "Depends on the equipment carried.",
		DataCollected:    dataPresence,
		PrivacyImpact:    model.PrivacyImpactMedium,
		Recommendations:  recsLawEnforcement,
		BaseThreatWeight: 40,
	},
	{
		DeviceType:       model.DeviceTypeSurveillanceDrone,
		Name:             "Surveillance Drone",
		Category:         "Aerial Surveillance",
		Description:      "Drone used for aerial observation, often with zoom or thermal cameras.",
		TypicalOperator:  "Police, private security",
		LegalFramework:   "FAA rules govern flight; privacy rules vary by state.",
		DataCollected:    dataVideo,
		PrivacyImpact:    model.PrivacyImpactHigh,
		Recommendations:  recsDrone,
		BaseThreatWeight: 65,
		Modifiers:        []model.ThreatModifier{{Condition: model.ConditionFollowing, Delta: 20}},
	},
	{
		DeviceType:       model.DeviceTypeConsumerDrone,
		Name:             "Consumer Drone",
		Category:         "Aerial Surveillance",
		Description:      "Hobbyist drone with a camera.",
		TypicalOperator:  "Hobbyists",
		LegalFramework:   "FAA Part 107 and local privacy law apply.",
		DataCollected:    dataVideo,
		PrivacyImpact:    model.PrivacyImpactMedium,
		Recommendations:  recsDrone,
		BaseThreatWeight: 35,
		Modifiers:        []model.ThreatModifier{{Condition: model.ConditionFollowing, Delta: 20}},
	},
	{
		DeviceType:       model.DeviceTypeAirTag,
		Name:             "Apple AirTag",
		Category:         "Personal Trackers",
		Description:      "Item tracker reporting its location through nearby Apple devices.",
		TypicalOperator:  "Consumers; misused for stalking",
		LegalFramework:   "Covert tracking of a person is a crime in many states.",
		DataCollected:    dataTracker,
		PrivacyImpact:    model.PrivacyImpactHigh,
		Recommendations:  recsTracker,
		BaseThreatWeight: 70,
		Modifiers:        []model.ThreatModifier{{Condition: model.ConditionFollowing, Delta: 25}, {Condition: model.ConditionRepeatedSights, Delta: 10}},
	},
	{
		DeviceType:       model.DeviceTypeFindMyAccessory,
		Name:             "Find My Accessory",
		Category:         "Personal Trackers",
		Description:      "Third-party accessory on the Apple Find My network.",
		TypicalOperator:  "Consumers",
		LegalFramework:   "Covert tracking of a person is a crime in many states.",
		DataCollected:    dataTracker,
		PrivacyImpact:    model.PrivacyImpactHigh,
		Recommendations:  recsTracker,
		BaseThreatWeight: 65,
		Modifiers:        []model.ThreatModifier{{Condition: model.ConditionFollowing, Delta: 25}},
	},
	{
		DeviceType:       model.DeviceTypeTileTracker,
		Name:             "Tile Tracker",
		Category:         "Personal Trackers",
		Description:      "Item tracker reporting its location through the Tile network.",
		TypicalOperator:  "Consumers; misused for stalking",
		LegalFramework:   "Covert tracking of a person is a crime in many states.",
		DataCollected:    dataTracker,
		PrivacyImpact:    model.PrivacyImpactHigh,
		Recommendations:  recsTracker,
		BaseThreatWeight: 65,
		Modifiers:        []model.ThreatModifier{{Condition: model.ConditionFollowing, Delta: 25}},
	},
	{
		DeviceType:       model.DeviceTypeSamsungSmartTag,
		Name:             "Samsung SmartTag",
		Category:         "Personal Trackers",
		Description:      "Item tracker reporting its location through Galaxy devices.",
		TypicalOperator:  "Consumers; misused for stalking",
		LegalFramework:   "Covert tracking of a person is a crime in many states.",
		DataCollected:    dataTracker,
		PrivacyImpact:    model.PrivacyImpactHigh,
		Recommendations:  recsTracker,
		BaseThreatWeight: 65,
		Modifiers:        []model.ThreatModifier{{Condition: model.ConditionFollowing, Delta: 25}},
	},
	{
		DeviceType:       model.DeviceTypeChipoloTracker,
		Name:             "Chipolo Tracker",
		Category:         "Personal Trackers",
		Description:      "Item tracker on the Chipolo or Find My network.",
		TypicalOperator:  "Consumers",
		LegalFramework:   "Covert tracking of a person is a crime in many states.",
		DataCollected:    dataTracker,
		PrivacyImpact:    model.PrivacyImpactHigh,
		Recommendations:  recsTracker,
		BaseThreatWeight: 60,
		Modifiers:        []model.ThreatModifier{{Condition: model.ConditionFollowing, Delta: 25}},
	},
	{
		DeviceType:       model.DeviceTypeGenericBLETracker,
		Name:             "BLE Tracker",
		Category:         "Personal Trackers",
		Description:      "Unbranded Bluetooth tracker.",
		TypicalOperator:  "Unknown",
		LegalFramework:   "Covert tracking of a person is a crime in many states.",
		DataCollected:    dataTracker,
		PrivacyImpact:    model.PrivacyImpactHigh,
		Recommendations:  recsTracker,
		BaseThreatWeight: 60,
		Modifiers:        []model.ThreatModifier{{Condition: model.ConditionFollowing, Delta: 25}},
	},
	{
		DeviceType:       model.DeviceTypeGPSTracker,
		Name:             "GPS Tracker",
		Category:         "Personal Trackers",
		Description:      "Cellular GPS tracker that reports position in real time.",
		TypicalOperator:  "Private investigators, abusers, fleet owners",
		LegalFramework:   "Warrantless GPS tracking by police is unconstitutional (US v. Jones).",
		DataCollected:    dataTracker,
		PrivacyImpact:    model.PrivacyImpactCritical,
		Recommendations:  recsTracker,
		BaseThreatWeight: 80,
		Modifiers:        []model.ThreatModifier{{Condition: model.ConditionFollowing, Delta: 25}},
	},
	{
		DeviceType:       model.DeviceTypeFleetTelematics,
		Name:             "Fleet Telematics",
		Category:         "Personal Trackers",
		Description:      "Vehicle telematics unit reporting location and driving behaviour.",
		TypicalOperator:  "Employers, fleet operators",
		LegalFramework:   "Employee monitoring notice requirements vary.",
		DataCollected:    dataTracker,
		PrivacyImpact:    model.PrivacyImpactMedium,
		Recommendations:  recsTelematics,
		BaseThreatWeight: 35,
	},
	{
		DeviceType:       model.DeviceTypeRetailBeacon,
		Name:             "Retail Beacon",
		Category:         "Proximity Beacons",
		Description:      "BLE beacon used by apps to detect in-store presence.",
		TypicalOperator:  "Retailers, venues",
		LegalFramework:   "Apps must disclose location collection.",
		DataCollected:    dataBeacon,
		PrivacyImpact:    model.PrivacyImpactLow,
		Recommendations:  recsBeacon,
		BaseThreatWeight: 25,
	},
	{
		DeviceType:       model.DeviceTypeEddystoneBeacon,
		Name:             "Eddystone Beacon",
		Category:         "Proximity Beacons",
		Description:      "Google Eddystone beacon broadcasting IDs, URLs or telemetry.",
		TypicalOperator:  "Retailers, venues",
		LegalFramework:   "Apps must disclose location collection.",
		DataCollected:    dataBeacon,
		PrivacyImpact:    model.PrivacyImpactLow,
		Recommendations:  recsBeacon,
		BaseThreatWeight: 25,
	},
	{
		DeviceType:       model.DeviceTypeAltBeacon,
		Name:             "AltBeacon",
		Category:         "Proximity Beacons",
		Description:      "Open-format proximity beacon.",
		TypicalOperator:  "Retailers, venues",
		LegalFramework:   "Apps must disclose location collection.",
		DataCollected:    dataBeacon,
		PrivacyImpact:    model.PrivacyImpactLow,
		Recommendations:  recsBeacon,
		BaseThreatWeight: 25,
	},
	{
		DeviceType:       model.DeviceTypeExposureNotification,
		Name:             "Exposure Notification",
		Category:         "Proximity Beacons",
		Description:      "Privacy-preserving contact tracing or unwanted-tracking broadcast.",
		TypicalOperator:  "Phones, trackers",
		LegalFramework:   "Designed with rotating identifiers.",
		DataCollected:    dataBeacon,
		PrivacyImpact:    model.PrivacyImpactLow,
		Recommendations:  recsBeacon,
		BaseThreatWeight: 15,
	},
	{
		DeviceType:       model.DeviceTypeRetailAnalyticsSensor,
		Name:             "Retail Analytics Sensor",
		Category:         "Proximity Beacons",
		Description:      "Sensor counting and following shoppers by their wireless scan requests.",
		TypicalOperator:  "Retailers, malls",
		LegalFramework:   "Notice requirements vary; often undisclosed.",
		DataCollected:    dataFootfall,
		PrivacyImpact:    model.PrivacyImpactMedium,
		Recommendations:  recsBeacon,
		BaseThreatWeight: 40,
	},
	{
		DeviceType:       model.DeviceTypeRingDoorbell,
		Name:             "Ring Doorbell",
		Category:         "Consumer Cameras",
		Description:      "Video doorbell recording the street and porch.",
		TypicalOperator:  "Homeowners",
		LegalFramework:   "Footage can be requested by police.",
		DataCollected:    dataVideo,
		PrivacyImpact:    model.PrivacyImpactMedium,
		Recommendations:  recsConsumerCamera,
		BaseThreatWeight: 35,
	},
	{
		DeviceType:       model.DeviceTypeNestCamera,
		Name:             "Nest Camera",
		Category:         "Consumer Cameras",
		Description:      "Google Nest indoor or outdoor camera.",
		TypicalOperator:  "Homeowners",
		LegalFramework:   "Footage can be requested by police.",
		DataCollected:    dataVideo,
		PrivacyImpact:    model.PrivacyImpactMedium,
		Recommendations:  recsConsumerCamera,
		BaseThreatWeight: 35,
	},
	{
		DeviceType:       model.DeviceTypeArloCamera,
		Name:             "Arlo Camera",
		Category:         "Consumer Cameras",
		Description:      "Wireless home security camera.",
		TypicalOperator:  "Homeowners",
		LegalFramework:   "Recording laws vary.",
		DataCollected:    dataVideo,
		PrivacyImpact:    model.PrivacyImpactMedium,
		Recommendations:  recsConsumerCamera,
		BaseThreatWeight: 35,
	},
	{
		DeviceType:       model.DeviceTypeWyzeCamera,
		Name:             "Wyze Camera",
		Category:         "Consumer Cameras",
		Description:      "Low-cost home camera.",
		TypicalOperator:  "Homeowners",
		LegalFramework:   "Recording laws vary.",
		DataCollected:    dataVideo,
		PrivacyImpact:    model.PrivacyImpactMedium,
		Recommendations:  recsConsumerCamera,
		BaseThreatWeight: 35,
	},
	{
		DeviceType:       model.DeviceTypeEufyCamera,
		Name:             "Eufy Camera",
		Category:         "Consumer Cameras",
		Description:      "Anker Eufy home camera.",
		TypicalOperator:  "Homeowners",
		LegalFramework:   "Recording laws vary.",
		DataCollected:    dataVideo,
		PrivacyImpact:    model.PrivacyImpactMedium,
		Recommendations:  recsConsumerCamera,
		BaseThreatWeight: 35,
	},
	{
		DeviceType:       model.DeviceTypeBlinkCamera,
		Name:             "Blink Camera",
		Category:         "Consumer Cameras",
		Description:      "Amazon Blink battery camera.",
		TypicalOperator:  "Homeowners",
		LegalFramework:   "Recording laws vary.",
		DataCollected:    dataVideo,
		PrivacyImpact:    model.PrivacyImpactMedium,
		Recommendations:  recsConsumerCamera,
		BaseThreatWeight: 35,
	},
	{
		DeviceType:       model.DeviceTypeSmartCamera,
		Name:             "Smart Camera",
		Category:         "Consumer Cameras",
		Description:      "Generic networked camera.",
		TypicalOperator:  "Homeowners, businesses",
		LegalFramework:   "Recording laws vary.",
		DataCollected:    dataVideo,
		PrivacyImpact:    model.PrivacyImpactMedium,
		Recommendations:  recsConsumerCamera,
		BaseThreatWeight: 40,
	},
	{
		DeviceType:       model.DeviceTypeBabyMonitor,
		Name:             "Baby Monitor",
		Category:         "Consumer Cameras",
		Description:      "Camera and microphone monitor for a nursery.",
		TypicalOperator:  "Parents",
		LegalFramework:   "Recording laws vary.",
		DataCollected:    dataVideo,
		PrivacyImpact:    model.PrivacyImpactMedium,
		Recommendations:  recsConsumerCamera,
		BaseThreatWeight: 30,
	},
	{
		DeviceType:       model.DeviceTypeSimpliSafe,
		Name:             "SimpliSafe System",
		Category:         "Home Security",
		Description:      "Home alarm system with cameras and sensors.",
		TypicalOperator:  "Homeowners",
		LegalFramework:   "Monitoring contracts govern data use.",
		DataCollected:    dataHome,
		PrivacyImpact:    model.PrivacyImpactLow,
		Recommendations:  recsConsumerCamera,
		BaseThreatWeight: 25,
	},
	{
		DeviceType:       model.DeviceTypeADTSecurity,
		Name:             "ADT System",
		Category:         "Home Security",
		Description:      "Monitored home alarm system.",
		TypicalOperator:  "Homeowners, businesses",
		LegalFramework:   "Monitoring contracts govern data use.",
		DataCollected:    dataHome,
		PrivacyImpact:    model.PrivacyImpactLow,
		Recommendations:  recsConsumerCamera,
		BaseThreatWeight: 25,
	},
	{
		DeviceType:       model.DeviceTypeVivintSecurity,
		Name:             "Vivint System",
		Category:         "Home Security",
		Description:      "Smart home security panel and cameras.",
		TypicalOperator:  "Homeowners",
		LegalFramework:   "Monitoring contracts govern data use.",
		DataCollected:    dataHome,
		PrivacyImpact:    model.PrivacyImpactLow,
		Recommendations:  recsConsumerCamera,
		BaseThreatWeight: 25,
	},
	{
		DeviceType:       model.DeviceTypeCCTVCamera,
		Name:             "CCTV Camera",
		Category:         "Fixed Video Surveillance",
		Description:      "Fixed IP surveillance camera.",
		TypicalOperator:  "Businesses, municipalities",
		LegalFramework:   "Public-space recording broadly permitted; audio often restricted.",
		DataCollected:    dataVideo,
		PrivacyImpact:    model.PrivacyImpactMedium,
		Recommendations:  recsCCTV,
		BaseThreatWeight: 45,
	},
	{
		DeviceType:       model.DeviceTypePTZCamera,
		Name:             "PTZ Camera",
		Category:         "Fixed Video Surveillance",
		Description:      "Pan-tilt-zoom camera able to follow subjects.",
		TypicalOperator:  "Municipalities, businesses",
		LegalFramework:   "Public-space recording broadly permitted.",
		DataCollected:    dataVideo,
		PrivacyImpact:    model.PrivacyImpactHigh,
		Recommendations:  recsCCTV,
		BaseThreatWeight: 55,
	},
	{
		DeviceType:       model.DeviceTypeThermalCamera,
		Name:             "Thermal Camera",
		Category:         "Fixed Video Surveillance",
		Description:      "Infrared camera detecting body heat through darkness.",
		TypicalOperator:  "Police, border agencies",
		LegalFramework:   "Thermal imaging of homes requires a warrant (Kyllo v. US).",
		DataCollected:    dataVideo,
		PrivacyImpact:    model.PrivacyImpactHigh,
		Recommendations:  recsCCTV,
		BaseThreatWeight: 55,
	},
	{
		DeviceType:       model.DeviceTypeFacialRecognition,
		Name:             "Facial Recognition Camera",
		Category:         "Fixed Video Surveillance",
		Description:      "Camera system matching faces against watchlists.",
		TypicalOperator:  "Police, retailers, venues",
		LegalFramework:   "Banned or restricted in several cities; BIPA applies in Illinois.",
		DataCollected:    dataBiometric,
		PrivacyImpact:    model.PrivacyImpactCritical,
		Recommendations:  recsCCTV,
		BaseThreatWeight: 85,
		Modifiers:        []model.ThreatModifier{{Condition: model.ConditionNearProtest, Delta: 15}},
	},
	{
		DeviceType:       model.DeviceTypeSmartStreetlight,
		Name:             "Smart Streetlight",
		Category:         "Smart City",
		Description:      "Streetlight carrying cameras, microphones or sensors.",
		TypicalOperator:  "Municipalities",
		LegalFramework:   "Subject to local surveillance ordinances.",
		DataCollected:    dataSmartCity,
		PrivacyImpact:    model.PrivacyImpactMedium,
		Recommendations:  recsSmartCity,
		BaseThreatWeight: 40,
	},
	{
		DeviceType:       model.DeviceTypeSmartCityNode,
		Name:             "Smart City Node",
		Category:         "Smart City",
		Description:      "Sensor kiosk or node collecting wireless and environmental data.",
		TypicalOperator:  "Municipalities, vendors",
		LegalFramework:   "Subject to local surveillance ordinances.",
		DataCollected:    dataSmartCity,
		PrivacyImpact:    model.PrivacyImpactMedium,
		Recommendations:  recsSmartCity,
		BaseThreatWeight: 45,
	},
	{
		DeviceType:       model.DeviceTypeHiddenCamera,
		Name:             "Hidden Camera",
		Category:         "Covert Devices",
		Description:      "Concealed camera module, often in rentals or changing areas.",
		TypicalOperator:  "Voyeurs, private investigators",
		LegalFramework:   "Recording in private spaces without consent is a crime.",
		DataCollected:    dataVideo,
		PrivacyImpact:    model.PrivacyImpactCritical,
		Recommendations:  recsHidden,
		BaseThreatWeight: 85,
		Modifiers:        []model.ThreatModifier{{Condition: model.ConditionStationary, Delta: 5}},
	},
	{
		DeviceType:       model.DeviceTypeHiddenMicrophone,
		Name:             "Hidden Microphone",
		Category:         "Covert Devices",
		Description:      "Concealed audio recorder or GSM bug.",
		TypicalOperator:  "Unknown",
		LegalFramework:   "Recording conversations may require all-party consent.",
		DataCollected:    dataAudio,
		PrivacyImpact:    model.PrivacyImpactCritical,
		Recommendations:  recsHidden,
		BaseThreatWeight: 85,
	},
	{
		DeviceType:       model.DeviceTypeRogueAccessPoint,
		Name:             "Rogue Access Point",
		Category:         "Network Attacks",
		Description:      "Unauthorised access point inviting devices to connect.",
		TypicalOperator:  "Attackers",
		LegalFramework:   "Unauthorised interception is a crime.",
		DataCollected:    dataNetwork,
		PrivacyImpact:    model.PrivacyImpactHigh,
		Recommendations:  recsNetwork,
		BaseThreatWeight: 65,
	},
	{
		DeviceType:       model.DeviceTypeEvilTwin,
		Name:             "Evil Twin",
		Category:         "Network Attacks",
		Description:      "Access point cloning a trusted network name to intercept traffic.",
		TypicalOperator:  "Attackers",
		LegalFramework:   "Unauthorised interception is a crime.",
		DataCollected:    dataNetwork,
		PrivacyImpact:    model.PrivacyImpactHigh,
		Recommendations:  recsNetwork,
		BaseThreatWeight: 75,
	},
	{
		DeviceType:       model.DeviceTypeWiFiPineapple,
		Name:             "WiFi Pineapple",
		Category:         "Network Attacks",
		Description:      "Hak5 auditing device that impersonates remembered networks.",
		TypicalOperator:  "Penetration testers, attackers",
		LegalFramework:   "Legal only with authorisation of the network owner.",
		DataCollected:    dataNetwork,
		PrivacyImpact:    model.PrivacyImpactHigh,
		Recommendations:  recsNetwork,
		BaseThreatWeight: 80,
	},
	{
		DeviceType:       model.DeviceTypeKarmaAttack,
		Name:             "Karma Attack",
		Category:         "Network Attacks",
		Description:      "Access point answering every network search request to lure devices.",
		TypicalOperator:  "Attackers",
		LegalFramework:   "Unauthorised interception is a crime.",
		DataCollected:    dataNetwork,
		PrivacyImpact:    model.PrivacyImpactHigh,
		Recommendations:  recsNetwork,
		BaseThreatWeight: 75,
	},
	{
		DeviceType:       model.DeviceTypeDeauthAttacker,
		Name:             "Deauthentication Attacker",
		Category:         "Network Attacks",
		Description:      "Transmitter forcing clients off their network.",
		TypicalOperator:  "Attackers",
		LegalFramework:   "Intentional interference violates FCC rules.",
		DataCollected:    dataNetwork,
		PrivacyImpact:    model.PrivacyImpactMedium,
		Recommendations:  recsNetwork,
		BaseThreatWeight: 60,
	},
	{
		DeviceType:       model.DeviceTypePacketSniffer,
		Name:             "Packet Sniffer",
		Category:         "Network Attacks",
		Description:      "Passive capture of wireless traffic.",
		TypicalOperator:  "Attackers, administrators",
		LegalFramework:   "Interception of others' traffic is a crime.",
		DataCollected:    dataNetwork,
		PrivacyImpact:    model.PrivacyImpactHigh,
		Recommendations:  recsNetwork,
		BaseThreatWeight: 60,
	},
	{
		DeviceType:       model.DeviceTypeManInTheMiddle,
		Name:             "Man-in-the-Middle",
		Category:         "Network Attacks",
		Description:      "Device relaying and modifying traffic between victims and the network.",
		TypicalOperator:  "Attackers",
		LegalFramework:   "Unauthorised interception is a crime.",
		DataCollected:    dataNetwork,
		PrivacyImpact:    model.PrivacyImpactCritical,
		Recommendations:  recsNetwork,
		BaseThreatWeight: 85,
	},
	{
		DeviceType:       model.DeviceTypeSuspiciousHotspot,
		Name:             "Suspicious Hotspot",
		Category:         "Network Attacks",
		Description:      "Open hotspot with a lure-style name.",
		TypicalOperator:  "Unknown",
		LegalFramework:   "Unauthorised interception is a crime.",
		DataCollected:    dataNetwork,
		PrivacyImpact:    model.PrivacyImpactMedium,
		Recommendations:  recsNetwork,
		BaseThreatWeight: 45,
	},
	{
		DeviceType:       model.DeviceTypeHiddenNetwork,
		Name:             "Hidden Network",
		Category:         "Network Attacks",
		Description:      "Strong access point not broadcasting its name.",
		TypicalOperator:  "Unknown",
		LegalFramework:   "None specific.",
		DataCollected:    dataNetwork,
		PrivacyImpact:    model.PrivacyImpactLow,
		Recommendations:  recsNetwork,
		BaseThreatWeight: 30,
	},
	{
		DeviceType:       model.DeviceTypeBLESpamApple,
		Name:             "Apple BLE Spam",
		Category:         "BLE Attacks",
		Description:      "Flood of forged Apple proximity-pairing popups.",
		TypicalOperator:  "Pranksters, attackers",
		LegalFramework:   "Intentional interference may violate spectrum rules.",
		DataCollected:    dataNone,
		PrivacyImpact:    model.PrivacyImpactLow,
		Recommendations:  recsBLESpam,
		BaseThreatWeight: 40,
	},
	{
		DeviceType:       model.DeviceTypeBLESpamAndroid,
		Name:             "Android BLE Spam",
		Category:         "BLE Attacks",
		Description:      "Flood of forged Google Fast Pair popups.",
		TypicalOperator:  "Pranksters, attackers",
		LegalFramework:   "Intentional interference may violate spectrum rules.",
		DataCollected:    dataNone,
		PrivacyImpact:    model.PrivacyImpactLow,
		Recommendations:  recsBLESpam,
		BaseThreatWeight: 40,
	},
	{
		DeviceType:       model.DeviceTypeBLESpamWindows,
		Name:             "Windows BLE Spam",
		Category:         "BLE Attacks",
		Description:      "Flood of forged Microsoft Swift Pair popups.",
		TypicalOperator:  "Pranksters, attackers",
		LegalFramework:   "Intentional interference may violate spectrum rules.",
		DataCollected:    dataNone,
		PrivacyImpact:    model.PrivacyImpactLow,
		Recommendations:  recsBLESpam,
		BaseThreatWeight: 40,
	},
	{
		DeviceType:       model.DeviceTypeFlipperZero,
		Name:             "Flipper Zero",
		Category:         "BLE Attacks",
		Description:      "Multi-protocol hacking tool capable of RFID, sub-GHz and BLE attacks.",
		TypicalOperator:  "Hobbyists, attackers",
		LegalFramework:   "Legal to own; misuse may be a crime.",
		DataCollected:    dataNone,
		PrivacyImpact:    model.PrivacyImpactMedium,
		Recommendations:  recsBLESpam,
		BaseThreatWeight: 45,
	},
	{
		DeviceType:       model.DeviceTypeSatelliteAnomaly,
		Name:             "Satellite Anomaly",
		Category:         "Satellite",
		Description:      "Unexpected switch to a non-terrestrial network while terrestrial coverage is strong.",
		TypicalOperator:  "Unknown",
		LegalFramework:   "Depends on the network operator.",
		DataCollected:    dataCellular,
		PrivacyImpact:    model.PrivacyImpactMedium,
		Recommendations:  recsSatellite,
		BaseThreatWeight: 50,
	},
	{
		DeviceType:       model.DeviceTypeUnknownSurveillance,
		Name:             "Unknown Surveillance Device",
		Category:         "Uncategorized",
		Description:      "Device showing surveillance traits without a specific match.",
		TypicalOperator:  "Unknown",
		LegalFramework:   "Unknown.",
		DataCollected:    dataPresence,
		PrivacyImpact:    model.PrivacyImpactMedium,
		Recommendations:  recsGeneric,
		BaseThreatWeight: 45,
	},
}
