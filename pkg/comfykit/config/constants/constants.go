package constants

// DefaultConfigName is the config that is used when no config is specified
const DefaultConfigName = "default"

// EnvConfigName is the environment variable that carries the active config name
const EnvConfigName = "CONFIG_NAME"

const (
	// DefaultConfigDir is the directory containing the named config documents
	DefaultConfigDir = "/workspace/comfykit/configs"

	// DefaultNodesDir is the custom node installation directory of ComfyUI
	DefaultNodesDir = "/workspace/ComfyUI/custom_nodes"

	// DefaultModelsDir is the model root directory of ComfyUI
	DefaultModelsDir = "/workspace/ComfyUI/models"

	// DefaultWorkflowsDir is the workflow directory of ComfyUI
	DefaultWorkflowsDir = "/workspace/ComfyUI/user/default/workflows"

	// NetworkVolumePath is the persistent volume mounted by the pod runtime
	NetworkVolumePath = "/runpod"
)

// ModelCategories are the known first-level directories below the model root
var ModelCategories = []string{
	"checkpoints",
	"clip",
	"clip_vision",
	"controlnet",
	"diffusion_models",
	"embeddings",
	"loras",
	"unet",
	"upscale_models",
	"vae",
}
