package glshader

// Built-in programs the viewport always carries. Callers with custom
// effects pass their own Sources instead.

// Flat vertex shader: transform only, color comes from u_color.
const flatVertexSource = `
#version 410 core

uniform mat4 u_view_model_matrix;
uniform mat4 u_projection_matrix;

in vec3 v_position;

void main() {
    gl_Position = u_projection_matrix * u_view_model_matrix * vec4(v_position, 1.0);
}
`

const flatFragmentSource = `
#version 410 core

uniform vec4 u_color;

out vec4 out_color;

void main() {
    out_color = u_color;
}
`

// Gouraud vertex shader: two directional lights evaluated per vertex.
const gouraudVertexSource = `
#version 410 core

#define LIGHT_TOP_DIR        vec3(-0.4574957, 0.4574957, 0.7624929)
#define LIGHT_TOP_DIFFUSE    0.8
#define LIGHT_TOP_SPECULAR   0.125
#define LIGHT_TOP_SHININESS  20.0

#define LIGHT_FRONT_DIR      vec3(0.6985074, 0.1397015, 0.6985074)
#define LIGHT_FRONT_DIFFUSE  0.3

#define INTENSITY_AMBIENT    0.3

uniform mat4 u_view_model_matrix;
uniform mat4 u_projection_matrix;
uniform mat3 u_view_normal_matrix;

in vec3 v_position;
in vec3 v_normal;

// x = diffuse+ambient, y = specular
out vec2 intensity;

void main() {
    vec3 eye_normal = normalize(u_view_normal_matrix * v_normal);

    float NdotL = max(dot(eye_normal, LIGHT_TOP_DIR), 0.0);
    intensity.x = INTENSITY_AMBIENT + NdotL * LIGHT_TOP_DIFFUSE;

    vec4 position = u_view_model_matrix * vec4(v_position, 1.0);
    vec3 half_dir = normalize(-normalize(position.xyz) + LIGHT_TOP_DIR);
    intensity.y = LIGHT_TOP_SPECULAR * pow(max(dot(half_dir, eye_normal), 0.0), LIGHT_TOP_SHININESS);

    NdotL = max(dot(eye_normal, LIGHT_FRONT_DIR), 0.0);
    intensity.x += NdotL * LIGHT_FRONT_DIFFUSE;

    gl_Position = u_projection_matrix * position;
}
`

const gouraudFragmentSource = `
#version 410 core

uniform vec4 u_color;

in vec2 intensity;

out vec4 out_color;

void main() {
    out_color = vec4(vec3(intensity.y) + u_color.rgb * intensity.x, u_color.a);
}
`

// FlatSources returns the unlit single-color program used for tool paths
// and overlay geometry.
func FlatSources() Sources {
	var s Sources
	s[StageVertex] = flatVertexSource
	s[StageFragment] = flatFragmentSource
	return s
}

// GouraudSources returns the per-vertex-lit program used for model meshes
// and the print bed.
func GouraudSources() Sources {
	var s Sources
	s[StageVertex] = gouraudVertexSource
	s[StageFragment] = gouraudFragmentSource
	return s
}
