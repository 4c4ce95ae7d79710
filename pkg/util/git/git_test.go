package git

import (
	"testing"
)

func TestGetRepoName(t *testing.T) {
	testCases := map[string]string{
		"https://github.com/ltdrdata/ComfyUI-Manager":           "ComfyUI-Manager",
		"https://github.com/ltdrdata/ComfyUI-Manager.git":       "ComfyUI-Manager",
		"https://github.com/cubiq/ComfyUI_IPAdapter_plus/":      "ComfyUI_IPAdapter_plus",
		"git@github.com:Fannovel16/comfyui_controlnet_aux.git":  "comfyui_controlnet_aux",
		"ComfyUI-Impact-Pack":                                   "ComfyUI-Impact-Pack",
		"https://gitlab.com/some/nested/group/repository.git/":  "repository",
	}

	for url, expected := range testCases {
		name := GetRepoName(url)
		if name != expected {
			t.Fatalf("GetRepoName(%s): got %s, expected %s", url, name, expected)
		}
	}
}
