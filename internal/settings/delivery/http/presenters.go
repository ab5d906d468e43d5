package http

import (
	"ebaylistingapp/internal/model"
	"ebaylistingapp/internal/settings"
)

// --- Request DTOs ---

type updateReq struct {
	Fullscreen bool `json:"fullscreen"`
}

func (r updateReq) toInput() settings.UpdateInput {
	return settings.UpdateInput{Fullscreen: r.Fullscreen}
}

type storagePathReq struct {
	BasePath string `json:"base_path" binding:"required,min=1,max=4096"`
}

func (r storagePathReq) toInput() settings.SetStoragePathInput {
	return settings.SetStoragePathInput{BasePath: r.BasePath}
}

// --- Response DTOs ---

type settingsResp struct {
	Fullscreen  bool    `json:"fullscreen"`
	StoragePath *string `json:"storage_path"`
}

func newSettingsResp(s model.Settings) settingsResp {
	return settingsResp{
		Fullscreen:  s.Fullscreen,
		StoragePath: s.StoragePath,
	}
}

type detailResp struct {
	Settings settingsResp `json:"settings"`
	FirstRun bool         `json:"first_run"`
}

type updateResp struct {
	Settings settingsResp `json:"settings"`
}

type storagePathResp struct {
	Settings    settingsResp `json:"settings"`
	StoragePath string       `json:"storage_path"`
}
