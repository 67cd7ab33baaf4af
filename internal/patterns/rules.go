package patterns

import "github.com/InfraSecConsult/surveillance-detector-go/lib/model"

// ssidRules is evaluated in order against WiFi network names.
var ssidRules = []Rule{
	{
		Name:        "flock_safety",
		Expr:        `^Flock-[0-9A-Fa-f]{4,}$`,
		DeviceType:  model.DeviceTypeFlockSafetyCamera,
		BaseScore:   85,
		Quality:     model.MatchStrong,
		Description: "Flock Safety ALPR camera access point",
	},
	{
		Name:            "flock_generic",
		Expr:            `^flock`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypeFlockSafetyCamera,
		BaseScore:       60,
		Quality:         model.MatchPartial,
		Description:     "Network name containing the Flock vendor prefix",
	},
	{
		Name:            "penguin",
		Expr:            `^penguin[-_ ]?[0-9a-f]*`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypePenguinSurveillance,
		BaseScore:       70,
		Quality:         model.MatchStrong,
		Description:     "Penguin surveillance camera access point",
	},
	{
		Name:            "raven",
		Expr:            `^raven[-_ ]`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypeRavenAudioSensor,
		BaseScore:       65,
		Quality:         model.MatchPartial,
		Description:     "Raven acoustic sensor uplink",
	},
	{
		Name:            "shotspotter",
		Expr:            `shotspotter`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypeGunshotDetector,
		BaseScore:       75,
		Quality:         model.MatchStrong,
		Description:     "ShotSpotter acoustic sensor network",
	},
	{
		Name:            "vigilant_alpr",
		Expr:            `^(vigilant|autovu|genetec)`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypeALPRCamera,
		BaseScore:       70,
		Quality:         model.MatchStrong,
		Description:     "Commercial ALPR system network",
	},
	{
		Name:            "axon",
		Expr:            `^axon[-_ ]`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypeAxonDevice,
		BaseScore:       75,
		Quality:         model.MatchStrong,
		Description:     "Axon body camera or dock",
	},
	{
		Name:            "body_cam",
		Expr:            `^(bodycam|body[-_ ]cam|bwc[-_])`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypeBodyCamera,
		BaseScore:       60,
		Quality:         model.MatchPartial,
		Description:     "Body-worn camera hotspot",
	},
	{
		Name:            "motorola_si",
		Expr:            `^(si500|v300|apx)[-_ ]`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypeMotorolaPoliceTech,
		BaseScore:       60,
		Quality:         model.MatchPartial,
		Description:     "Motorola public-safety device",
	},
	{
		Name:            "cellebrite",
		Expr:            `^(cellebrite|ufed)`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypeCellebriteForensics,
		BaseScore:       80,
		Quality:         model.MatchStrong,
		Description:     "Cellebrite forensic extraction kit",
	},
	{
		Name:            "pineapple",
		Expr:            `pineapple`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypeWiFiPineapple,
		BaseScore:       90,
		Quality:         model.MatchStrong,
		Description:     "Hak5 WiFi Pineapple default network",
	},
	{
		Name:            "surveillance_van",
		Expr:            `^(fbi|police|dea|nsa)[ _-]?(surveillance)?[ _-]?van`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypeSurveillanceVan,
		BaseScore:       15,
		Quality:         model.MatchHeuristic,
		Description:     "Joke surveillance van network name",
	},
	{
		Name:            "hidden_camera",
		Expr:            `(spy[ _-]?cam|hidden[ _-]?cam|mini[ _-]?cam|hdwificam|^ipc[-_]|^cam[-_][0-9a-f]{6,})`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypeHiddenCamera,
		BaseScore:       55,
		Quality:         model.MatchPartial,
		Description:     "Covert camera module hotspot",
	},
	{
		Name:            "cctv_hikvision",
		Expr:            `^(hikvision|hik[-_]|dahua|dh[-_]ipc)`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypeCCTVCamera,
		BaseScore:       55,
		Quality:         model.MatchStrong,
		Description:     "IP CCTV camera setup network",
	},
	{
		Name:            "cctv_axis",
		Expr:            `^(axis|bosch|hanwha)[-_]`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypeCCTVCamera,
		BaseScore:       45,
		Quality:         model.MatchPartial,
		Description:     "Enterprise CCTV camera setup network",
	},
	{
		Name:            "dji",
		Expr:            `^(dji|mavic|phantom|tello)[-_ ]`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypeConsumerDrone,
		BaseScore:       50,
		Quality:         model.MatchStrong,
		Description:     "Consumer drone controller link",
	},
	{
		Name:            "skydio",
		Expr:            `^skydio`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypeSurveillanceDrone,
		BaseScore:       60,
		Quality:         model.MatchStrong,
		Description:     "Skydio drone link, used by police drone programs",
	},
	{
		Name:            "ring",
		Expr:            `^ring[-_ ](setup|[0-9a-f]{4,})`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypeRingDoorbell,
		BaseScore:       40,
		Quality:         model.MatchStrong,
		Description:     "Ring doorbell setup network",
	},
	{
		Name:            "nest",
		Expr:            `^(nest|google[-_ ]nest)[-_ ]?cam`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypeNestCamera,
		BaseScore:       40,
		Quality:         model.MatchStrong,
		Description:     "Nest camera setup network",
	},
	{
		Name:            "arlo",
		Expr:            `^arlo`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypeArloCamera,
		BaseScore:       40,
		Quality:         model.MatchStrong,
		Description:     "Arlo camera base station",
	},
	{
		Name:            "wyze",
		Expr:            `^wyze`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypeWyzeCamera,
		BaseScore:       40,
		Quality:         model.MatchStrong,
		Description:     "Wyze camera setup network",
	},
	{
		Name:            "eufy",
		Expr:            `^eufy`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypeEufyCamera,
		BaseScore:       40,
		Quality:         model.MatchStrong,
		Description:     "Eufy camera base station",
	},
	{
		Name:            "blink",
		Expr:            `^blink[-_ ]`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypeBlinkCamera,
		BaseScore:       40,
		Quality:         model.MatchStrong,
		Description:     "Blink camera sync module",
	},
	{
		Name:            "simplisafe",
		Expr:            `^simplisafe`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypeSimpliSafe,
		BaseScore:       30,
		Quality:         model.MatchStrong,
		Description:     "SimpliSafe base station",
	},
	{
		Name:            "adt",
		Expr:            `^adt[-_ ]`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypeADTSecurity,
		BaseScore:       30,
		Quality:         model.MatchPartial,
		Description:     "ADT security panel",
	},
	{
		Name:            "vivint",
		Expr:            `^vivint`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypeVivintSecurity,
		BaseScore:       30,
		Quality:         model.MatchStrong,
		Description:     "Vivint smart home panel",
	},
	{
		Name:            "baby_monitor",
		Expr:            `(baby[ _-]?(monitor|cam)|nanit|owlet)`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypeBabyMonitor,
		BaseScore:       30,
		Quality:         model.MatchPartial,
		Description:     "Baby monitor camera",
	},
	{
		Name:            "smart_city",
		Expr:            `^(linknyc|cityiq|smart[ _-]?city|ubicquia)`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypeSmartCityNode,
		BaseScore:       45,
		Quality:         model.MatchPartial,
		Description:     "Smart city sensor node",
	},
	{
		Name:            "streetlight",
		Expr:            `(streetlight|smart[ _-]?pole)`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypeSmartStreetlight,
		BaseScore:       40,
		Quality:         model.MatchPartial,
		Description:     "Smart streetlight controller",
	},
	{
		Name:            "retail_analytics",
		Expr:            `^(euclid|retailnext|density[-_])`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypeRetailAnalyticsSensor,
		BaseScore:       45,
		Quality:         model.MatchPartial,
		Description:     "Retail foot-traffic analytics sensor",
	},
	{
		Name:            "traffic_sensor",
		Expr:            `^(iteris|miovision|traffic[-_ ]?(cam|sensor))`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypeTrafficSensor,
		BaseScore:       35,
		Quality:         model.MatchPartial,
		Description:     "Traffic monitoring sensor",
	},
	{
		Name:            "toll",
		Expr:            `^(ezpass|e-zpass|fastrak|sunpass)[-_ ]`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypeTollReader,
		BaseScore:       35,
		Quality:         model.MatchPartial,
		Description:     "Toll reader maintenance network",
	},
	{
		Name:            "fleet",
		Expr:            `^(geotab|samsara|calamp)`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypeFleetTelematics,
		BaseScore:       35,
		Quality:         model.MatchStrong,
		Description:     "Fleet telematics unit",
	},
	{
		Name:            "smart_speaker",
		Expr:            `^(amazon[-_ ]?echo|alexa[-_ ]setup)`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypeSmartSpeaker,
		BaseScore:       20,
		Quality:         model.MatchWeak,
		Description:     "Smart speaker setup network",
	},
}

// bleNameRules is evaluated in order against BLE advertised local names.
var bleNameRules = []Rule{
	{
		Name:        "flock",
		Expr:        `^Flock`,
		DeviceType:  model.DeviceTypeFlockSafetyCamera,
		BaseScore:   80,
		Quality:     model.MatchStrong,
		Description: "Flock Safety device BLE name",
	},
	{
		Name:            "penguin",
		Expr:            `^penguin`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypePenguinSurveillance,
		BaseScore:       70,
		Quality:         model.MatchStrong,
		Description:     "Penguin surveillance device",
	},
	{
		Name:            "raven",
		Expr:            `^raven`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypeRavenAudioSensor,
		BaseScore:       70,
		Quality:         model.MatchStrong,
		Description:     "Raven acoustic gunshot sensor",
	},
	{
		Name:            "axon",
		Expr:            `^(axon|taser)`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypeAxonDevice,
		BaseScore:       80,
		Quality:         model.MatchStrong,
		Description:     "Axon body camera or TASER",
	},
	{
		Name:            "body_cam",
		Expr:            `^(bodycam|body[-_ ]cam|bwc)`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypeBodyCamera,
		BaseScore:       60,
		Quality:         model.MatchPartial,
		Description:     "Body-worn camera",
	},
	{
		Name:            "motorola",
		Expr:            `^(si500|v300|apx|motorola[-_ ]solutions)`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypeMotorolaPoliceTech,
		BaseScore:       60,
		Quality:         model.MatchPartial,
		Description:     "Motorola public-safety radio or camera",
	},
	{
		Name:            "l3harris",
		Expr:            `^(l3harris|harris[-_ ]xl)`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypeL3HarrisSurveillance,
		BaseScore:       65,
		Quality:         model.MatchPartial,
		Description:     "L3Harris radio equipment",
	},
	{
		Name:            "cellebrite",
		Expr:            `^(cellebrite|ufed)`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypeCellebriteForensics,
		BaseScore:       85,
		Quality:         model.MatchStrong,
		Description:     "Cellebrite forensic extraction kit",
	},
	{
		Name:            "graykey",
		Expr:            `^graykey`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypeGrayKeyForensics,
		BaseScore:       85,
		Quality:         model.MatchStrong,
		Description:     "GrayKey forensic unlock device",
	},
	{
		Name:            "flipper",
		Expr:            `^flipper`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypeFlipperZero,
		BaseScore:       70,
		Quality:         model.MatchStrong,
		Description:     "Flipper Zero multi-tool",
	},
	{
		Name:            "airtag",
		Expr:            `^airtag`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypeAirTag,
		BaseScore:       75,
		Quality:         model.MatchStrong,
		Description:     "Apple AirTag",
	},
	{
		Name:        "tile",
		Expr:        `^Tile$`,
		DeviceType:  model.DeviceTypeTileTracker,
		BaseScore:   75,
		Quality:     model.MatchExact,
		Description: "Tile tracker",
	},
	{
		Name:            "smarttag",
		Expr:            `^(smart[ _]?tag|galaxy[ _]smarttag)`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypeSamsungSmartTag,
		BaseScore:       75,
		Quality:         model.MatchStrong,
		Description:     "Samsung SmartTag",
	},
	{
		Name:            "chipolo",
		Expr:            `^chipolo`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypeChipoloTracker,
		BaseScore:       75,
		Quality:         model.MatchStrong,
		Description:     "Chipolo tracker",
	},
	{
		Name:            "gps_tracker",
		Expr:            `^(tkstar|invoxia|gps[ _-]?tracker|lojack)`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypeGPSTracker,
		BaseScore:       65,
		Quality:         model.MatchPartial,
		Description:     "Covert GPS tracker",
	},
	{
		Name:            "fleet",
		Expr:            `^(geotab|samsara|calamp)`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypeFleetTelematics,
		BaseScore:       35,
		Quality:         model.MatchPartial,
		Description:     "Fleet telematics unit",
	},
	{
		Name:            "dji",
		Expr:            `^(dji|mavic|mini[ _]?\d)`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypeConsumerDrone,
		BaseScore:       50,
		Quality:         model.MatchPartial,
		Description:     "Consumer drone",
	},
	{
		Name:            "hidden_camera",
		Expr:            `(spy[ _-]?cam|hidden[ _-]?cam|^lookcam)`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypeHiddenCamera,
		BaseScore:       55,
		Quality:         model.MatchPartial,
		Description:     "Covert camera module",
	},
	{
		Name:            "hidden_mic",
		Expr:            `(spy[ _-]?mic|voice[ _-]?recorder|^gsm[ _-]?bug)`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypeHiddenMicrophone,
		BaseScore:       55,
		Quality:         model.MatchPartial,
		Description:     "Covert audio recorder",
	},
	{
		Name:            "retail_beacon",
		Expr:            `^(estimote|kontakt|gimbal|bluecats)`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypeRetailBeacon,
		BaseScore:       40,
		Quality:         model.MatchStrong,
		Description:     "Retail proximity beacon",
	},
	{
		Name:            "ring",
		Expr:            `^ring[ _-]`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypeRingDoorbell,
		BaseScore:       35,
		Quality:         model.MatchPartial,
		Description:     "Ring doorbell",
	},
	{
		Name:            "wyze",
		Expr:            `^wyze`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypeWyzeCamera,
		BaseScore:       35,
		Quality:         model.MatchPartial,
		Description:     "Wyze camera",
	},
	{
		Name:            "eufy",
		Expr:            `^eufy`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypeEufyCamera,
		BaseScore:       35,
		Quality:         model.MatchPartial,
		Description:     "Eufy camera",
	},
	{
		Name:            "blink",
		Expr:            `^blink`,
		CaseInsensitive: true,
		DeviceType:      model.DeviceTypeBlinkCamera,
		BaseScore:       35,
		Quality:         model.MatchPartial,
		Description:     "Blink camera",
	},
}

// macPrefixRules matches the upper-case OUI of globally administered addresses.
var macPrefixRules = []Rule{
	{
		Name:        "flock_oui",
		Expr:        `^(58:8E:81|CC:CC:CC|EC:1B:BD|90:35:EA|04:0D:84|F0:82:C0|1C:34:F1|38:5B:44|94:34:69|B4:E3:F9)`,
		DeviceType:  model.DeviceTypeFlockSafetyCamera,
		BaseScore:   55,
		Quality:     model.MatchPartial,
		Description: "Radio module vendor used by Flock Safety cameras",
	},
	{
		Name:        "axon_oui",
		Expr:        `^00:25:DF`,
		DeviceType:  model.DeviceTypeAxonDevice,
		BaseScore:   70,
		Quality:     model.MatchStrong,
		Description: "Axon Enterprise (TASER International) OUI",
	},
	{
		Name:        "hak5_oui",
		Expr:        `^00:13:37`,
		DeviceType:  model.DeviceTypeWiFiPineapple,
		BaseScore:   80,
		Quality:     model.MatchStrong,
		Description: "Hak5 OUI",
	},
	{
		Name:        "hikvision_oui",
		Expr:        `^(44:19:B6|BC:AD:28|C0:56:E3|4C:BD:8F|28:57:BE)`,
		DeviceType:  model.DeviceTypeCCTVCamera,
		BaseScore:   50,
		Quality:     model.MatchStrong,
		Description: "Hikvision OUI",
	},
	{
		Name:        "dahua_oui",
		Expr:        `^(3C:EF:8C|E0:50:8B|90:02:A9|4C:11:BF)`,
		DeviceType:  model.DeviceTypeCCTVCamera,
		BaseScore:   50,
		Quality:     model.MatchStrong,
		Description: "Dahua OUI",
	},
	{
		Name:        "dji_oui",
		Expr:        `^(60:60:1F|34:D2:62|48:1C:B9)`,
		DeviceType:  model.DeviceTypeConsumerDrone,
		BaseScore:   50,
		Quality:     model.MatchStrong,
		Description: "DJI OUI",
	},
	{
		Name:        "parrot_oui",
		Expr:        `^(90:3A:E6|A0:14:3D|00:12:1C)`,
		DeviceType:  model.DeviceTypeConsumerDrone,
		BaseScore:   45,
		Quality:     model.MatchStrong,
		Description: "Parrot OUI",
	},
	{
		Name:        "nest_oui",
		Expr:        `^(18:B4:30|64:16:66)`,
		DeviceType:  model.DeviceTypeNestCamera,
		BaseScore:   35,
		Quality:     model.MatchPartial,
		Description: "Nest Labs OUI",
	},
	{
		Name:        "ring_oui",
		Expr:        `^(34:3E:A4|54:E0:19|9C:76:13)`,
		DeviceType:  model.DeviceTypeRingDoorbell,
		BaseScore:   35,
		Quality:     model.MatchPartial,
		Description: "Ring OUI",
	},
	{
		Name:        "wyze_oui",
		Expr:        `^(2C:AA:8E|7C:78:B2|D0:3F:27)`,
		DeviceType:  model.DeviceTypeWyzeCamera,
		BaseScore:   35,
		Quality:     model.MatchPartial,
		Description: "Wyze OUI",
	},
}
