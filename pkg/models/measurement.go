package models

// Box is a pixel-space bounding box.
type Box struct {
	X      int `json:"x" dynamodbav:"x"`
	Y      int `json:"y" dynamodbav:"y"`
	Width  int `json:"width" dynamodbav:"width"`
	Height int `json:"height" dynamodbav:"height"`
}

// Dimensions holds the pixel size of a measured image.
type Dimensions struct {
	Width  int `json:"width" dynamodbav:"width"`
	Height int `json:"height" dynamodbav:"height"`
}

// Grid describes the column layout detected in a source frame.
type Grid struct {
	Columns int `json:"columns" dynamodbav:"columns"`
	Gap     int `json:"gap" dynamodbav:"gap"`
}

// Spacing holds the named spacing measurements, in pixels.
type Spacing struct {
	SidebarWidth     int `json:"sidebar_width" dynamodbav:"sidebar_width"`
	NavHeight        int `json:"nav_height" dynamodbav:"nav_height"`
	CardPadding      int `json:"card_padding" dynamodbav:"card_padding"`
	SectionGap       int `json:"section_gap" dynamodbav:"section_gap"`
	ContainerPadding int `json:"container_padding" dynamodbav:"container_padding"`
}

// Colors holds the named color roles, as CSS hex values.
type Colors struct {
	Background string `json:"background" dynamodbav:"background"`
	Surface    string `json:"surface" dynamodbav:"surface"`
	Primary    string `json:"primary" dynamodbav:"primary"`
	Text       string `json:"text" dynamodbav:"text"`
	MutedText  string `json:"muted_text" dynamodbav:"muted_text"`
	Border     string `json:"border" dynamodbav:"border"`
}

// Typography holds the detected type scale, in pixels per level.
type Typography struct {
	H1    int `json:"h1" dynamodbav:"h1"`
	H2    int `json:"h2" dynamodbav:"h2"`
	H3    int `json:"h3" dynamodbav:"h3"`
	Body  int `json:"body" dynamodbav:"body"`
	Small int `json:"small" dynamodbav:"small"`
}

// Component is one detected UI component with its location and a detection confidence.
type Component struct {
	Type        string  `json:"type" dynamodbav:"type"`
	BoundingBox Box     `json:"bounding_box" dynamodbav:"bounding_box"`
	Confidence  float64 `json:"confidence" dynamodbav:"confidence"`
}

// Measurement is the fully-shaped output of the surveyor phase. After the
// validation/defaulting step every field is populated, so downstream consumers
// never branch on presence.
type Measurement struct {
	ImageDimensions Dimensions  `json:"image_dimensions" dynamodbav:"image_dimensions"`
	Grid            Grid        `json:"grid" dynamodbav:"grid"`
	Spacing         Spacing     `json:"spacing" dynamodbav:"spacing"`
	Colors          Colors      `json:"colors" dynamodbav:"colors"`
	Typography      Typography  `json:"typography" dynamodbav:"typography"`
	Components      []Component `json:"components" dynamodbav:"components"`
	Confidence      float64     `json:"confidence" dynamodbav:"confidence"`
}
