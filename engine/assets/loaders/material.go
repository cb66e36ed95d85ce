package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spaghettifunk/anima-tools/engine/core"
	"github.com/spaghettifunk/anima-tools/engine/math"
	"github.com/spaghettifunk/anima-tools/engine/resources"
)

type MaterialLoader struct{}

func (ml *MaterialLoader) Load(path string, assetType resources.ResourceType, params interface{}) (*resources.Resource, error) {
	if assetType != resources.ResourceTypeMaterial {
		return nil, fmt.Errorf("material loader cannot load %s resources", assetType)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	mCfg, err := ParseMaterial(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &resources.Resource{
		Type:     resources.ResourceTypeMaterial,
		Name:     mCfg.Name,
		FullPath: path,
		Data:     mCfg,
	}, nil
}

func (ml *MaterialLoader) Unload(*resources.Resource) error {
	return nil
}

// ParseMaterial reads an .amt material: one `key = value` pair per line,
// `#` comments and blank lines ignored.
func ParseMaterial(r io.Reader) (*resources.MaterialConfig, error) {
	scanner := bufio.NewScanner(r)
	materialConfig := &resources.MaterialConfig{}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip comments and empty lines
		if strings.HasPrefix(line, "#") || line == "" {
			continue
		}

		// Split key-value pairs by the first "=" sign
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			core.LogWarn("Skipping invalid line: %s", line)
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch key {
		case "guid":
			if _, err := uuid.Parse(value); err != nil {
				return nil, fmt.Errorf("invalid guid value: %s", value)
			}
			materialConfig.GUID = value
		case "name":
			materialConfig.Name = value
		case "shader":
			materialConfig.ShaderName = value
		case "diffuse_colour":
			colourValues := strings.Fields(value)
			if len(colourValues) != 4 {
				return nil, fmt.Errorf("invalid diffuse_colour, expected 4 values: %s", line)
			}
			var c [4]float32
			for i, v := range colourValues {
				f, err := strconv.ParseFloat(v, 32)
				if err != nil {
					return nil, fmt.Errorf("invalid diffuse_colour value: %s", v)
				}
				c[i] = float32(f)
			}
			materialConfig.DiffuseColour = math.NewVec4(c[0], c[1], c[2], c[3])
		case "shininess":
			shininess, err := strconv.ParseFloat(value, 32)
			if err != nil {
				return nil, fmt.Errorf("invalid shininess value: %s", value)
			}
			materialConfig.Shininess = float32(shininess)
		case "diffuse_map_name":
			materialConfig.DiffuseMapName = value
		case "specular_map_name":
			materialConfig.SpecularMapName = value
		case "normal_map_name":
			materialConfig.NormalMapName = value
		case "autorelease":
			autoRelease, err := strconv.ParseBool(value)
			if err != nil {
				return nil, fmt.Errorf("invalid autorelease value: %s", value)
			}
			materialConfig.AutoRelease = autoRelease
		default:
			core.LogError("Unknown key '%s' found in file. Skipping...", key)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if err := validateMaterial(materialConfig); err != nil {
		return nil, err
	}
	return materialConfig, nil
}

// WriteMaterial serializes cfg in the format ParseMaterial reads.
func WriteMaterial(w io.Writer, cfg *resources.MaterialConfig) error {
	if err := validateMaterial(cfg); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# anima material file")
	if cfg.GUID != "" {
		fmt.Fprintf(bw, "guid = %s\n", cfg.GUID)
	}
	fmt.Fprintf(bw, "name = %s\n", cfg.Name)
	fmt.Fprintf(bw, "shader = %s\n", cfg.ShaderName)
	c := cfg.DiffuseColour
	fmt.Fprintf(bw, "diffuse_colour = %s %s %s %s\n", formatFloat(c.X), formatFloat(c.Y), formatFloat(c.Z), formatFloat(c.W))
	fmt.Fprintf(bw, "shininess = %s\n", formatFloat(cfg.Shininess))
	if cfg.DiffuseMapName != "" {
		fmt.Fprintf(bw, "diffuse_map_name = %s\n", cfg.DiffuseMapName)
	}
	if cfg.SpecularMapName != "" {
		fmt.Fprintf(bw, "specular_map_name = %s\n", cfg.SpecularMapName)
	}
	if cfg.NormalMapName != "" {
		fmt.Fprintf(bw, "normal_map_name = %s\n", cfg.NormalMapName)
	}
	fmt.Fprintf(bw, "autorelease = %t\n", cfg.AutoRelease)
	return bw.Flush()
}

// SaveMaterialFile writes cfg to path, creating or truncating the file.
func SaveMaterialFile(path string, cfg *resources.MaterialConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteMaterial(f, cfg); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}

func validateMaterial(material *resources.MaterialConfig) error {
	if material.Name == "" {
		return fmt.Errorf("material name is required")
	}

	if material.ShaderName == "" {
		return fmt.Errorf("shader name is required")
	}

	if !math.Vec4InUnitRange(material.DiffuseColour) {
		return fmt.Errorf("diffuse_colour values must be between 0.0 and 1.0")
	}

	if material.Shininess < 0 {
		return fmt.Errorf("shininess must be a non-negative value")
	}

	if strings.ContainsAny(material.Name, "\r\n") {
		return fmt.Errorf("material name must be a single line: %q", material.Name)
	}

	return nil
}
