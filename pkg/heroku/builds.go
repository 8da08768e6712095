package heroku

// Build turns a source tarball into a release slug.
type Build struct {
	Timestamps

	ID              string           `json:"id"                yaml:"id"`
	App             IDReference      `json:"app"               yaml:"app"`
	Buildpacks      []Buildpack      `json:"buildpacks"        yaml:"buildpacks"`
	OutputStreamURL string           `json:"output_stream_url" yaml:"output_stream_url"`
	Release         *IDReference     `json:"release"           yaml:"release"`
	Slug            *IDReference     `json:"slug"              yaml:"slug"`
	SourceBlob      SourceBlob       `json:"source_blob"       yaml:"source_blob"`
	Stack           string           `json:"stack"             yaml:"stack"`
	Status          string           `json:"status"            yaml:"status"`
	User            AccountReference `json:"user"              yaml:"user"`
}

// Buildpack is a buildpack applied to a build.
type Buildpack struct {
	URL  string `json:"url"            yaml:"url"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// SourceBlob locates the source of a build.
type SourceBlob struct {
	URL      string  `json:"url"                yaml:"url"`
	Checksum *string `json:"checksum,omitempty" yaml:"checksum,omitempty"`
	Version  *string `json:"version,omitempty"  yaml:"version,omitempty"`
}

// BuildCreate starts a build from a source tarball.
//
// POST /apps/{app_id_or_name}/builds
type BuildCreate struct {
	Returns[Build]

	AppID  string
	Params BuildCreateParams
}

// BuildCreateParams are the parameters of BuildCreate.
type BuildCreateParams struct {
	Buildpacks []Buildpack `json:"buildpacks,omitempty"`
	SourceBlob SourceBlob  `json:"source_blob"`
}

// NewBuildCreate creates a BuildCreate endpoint for the tarball at
// sourceBlobURL.
func NewBuildCreate(appID, sourceBlobURL string) *BuildCreate {
	return &BuildCreate{
		AppID:  appID,
		Params: BuildCreateParams{SourceBlob: SourceBlob{URL: sourceBlobURL}},
	}
}

// WithChecksum sets the tarball checksum, e.g. "SHA256:...".
func (e *BuildCreate) WithChecksum(checksum string) *BuildCreate {
	e.Params.SourceBlob.Checksum = &checksum

	return e
}

// WithVersion sets a version label for the source.
func (e *BuildCreate) WithVersion(version string) *BuildCreate {
	e.Params.SourceBlob.Version = &version

	return e
}

// WithBuildpack replaces the buildpack list with a single buildpack.
func (e *BuildCreate) WithBuildpack(url, name string) *BuildCreate {
	e.Params.Buildpacks = []Buildpack{{URL: url, Name: name}}

	return e
}

func (e *BuildCreate) Method() string { return methodPost }
func (e *BuildCreate) Path() string   { return "apps/" + e.AppID + "/builds" }
func (e *BuildCreate) Body() any      { return e.Params }

// BuildList lists builds of an app.
type BuildList struct {
	Returns[[]Build]

	AppID string
}

// NewBuildList creates a BuildList endpoint.
func NewBuildList(appID string) *BuildList { return &BuildList{AppID: appID} }

func (e *BuildList) Method() string { return methodGet }
func (e *BuildList) Path() string   { return "apps/" + e.AppID + "/builds" }

// BuildDetails fetches one build.
type BuildDetails struct {
	Returns[Build]

	AppID   string
	BuildID string
}

// NewBuildDetails creates a BuildDetails endpoint.
func NewBuildDetails(appID, buildID string) *BuildDetails {
	return &BuildDetails{AppID: appID, BuildID: buildID}
}

func (e *BuildDetails) Method() string { return methodGet }
func (e *BuildDetails) Path() string   { return "apps/" + e.AppID + "/builds/" + e.BuildID }

// BuildCacheDelete purges the build cache of an app.
type BuildCacheDelete struct {
	Returns[Empty]

	AppID string
}

// NewBuildCacheDelete creates a BuildCacheDelete endpoint.
func NewBuildCacheDelete(appID string) *BuildCacheDelete {
	return &BuildCacheDelete{AppID: appID}
}

func (e *BuildCacheDelete) Method() string { return methodDelete }
func (e *BuildCacheDelete) Path() string   { return "apps/" + e.AppID + "/build-cache" }
