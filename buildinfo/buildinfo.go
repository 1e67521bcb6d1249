// Package buildinfo reports which build of the predictor is running. The
// values are stamped by the linker:
//
//	go build -ldflags "-X github.com/saqibullah/diabetes-predictor/buildinfo.BuildTag=v1.2.0 \
//		-X github.com/saqibullah/diabetes-predictor/buildinfo.BuildTime=$(date -u +%FT%TZ)"
package buildinfo

var (
	BuildTag  = "v0.0.0"
	BuildName = "diabetes-predictor"
	BuildTime = ""
)

// Build describes one binary. The zero value is not useful; read Info.
type Build struct {
	tag  *string
	name *string
	time *string
}

// Info reads the linker-stamped variables each time, so tests may override them.
var Info = Build{tag: &BuildTag, name: &BuildName, time: &BuildTime}

func (b Build) Tag() string  { return *b.tag }
func (b Build) Name() string { return *b.name }

// Time is the build timestamp, or "unknown" for unstamped builds.
func (b Build) Time() string {
	if *b.time == "" {
		return "unknown"
	}
	return *b.time
}

// UserAgent names a component of this build, e.g. "diabetes-predictor-client/v1.2.0".
func (b Build) UserAgent(component string) string {
	name := b.Name()
	if component != "" {
		name += "-" + component
	}
	return name + "/" + b.Tag()
}
