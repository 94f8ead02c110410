package overpass

// InterpreterAPIResponse is the [out:json] body returned by the interpreter endpoint
type InterpreterAPIResponse struct {
	Version   float64 `json:"version"`
	Generator string  `json:"generator"`
	Osm3s     struct {
		TimestampOsmBase string `json:"timestamp_osm_base"`
		Copyright        string `json:"copyright"`
	} `json:"osm3s"`
	Elements []Element `json:"elements"`
	Remark   string    `json:"remark,omitempty"`
}

// Element is a single OSM node from a query result
type Element struct {
	Type string            `json:"type"`
	Id   int64             `json:"id"`
	Lat  float64           `json:"lat"`
	Lon  float64           `json:"lon"`
	Tags map[string]string `json:"tags"`
}
