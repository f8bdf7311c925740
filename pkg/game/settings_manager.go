package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// EffectSettings 全局特效偏好
// 注意：这些设置是全局的，不绑定到特定用户
type EffectSettings struct {
	// EffectsEnabled 特效总开关，nil 表示交给特性检测决定
	EffectsEnabled *bool `yaml:"effectsEnabled,omitempty"`

	// ReducedMotion 用户是否偏好减少动效（选中后引擎保持关闭）
	ReducedMotion bool `yaml:"reducedMotion"`

	// 光标图形偏好
	HideSystemCursor bool   `yaml:"hideSystemCursor"`
	ShowCursorDot    bool   `yaml:"showCursorDot"`
	CursorDotShape   string `yaml:"cursorDotShape"`

	// Theme 当前选中的特效主题名，空表示默认
	Theme string `yaml:"theme"`
}

// DefaultEffectSettings 返回默认偏好
func DefaultEffectSettings() *EffectSettings {
	return &EffectSettings{
		EffectsEnabled:   nil,
		ReducedMotion:    false,
		HideSystemCursor: false,
		ShowCursorDot:    false,
		CursorDotShape:   "square",
		Theme:            "",
	}
}

// SettingsManager 偏好管理器
// 负责特效偏好的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager  // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *EffectSettings // 当前偏好
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "effects"
)

// NewSettingsManager 创建新的偏好管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 偏好管理器实例
//   - error: 如果加载偏好失败返回错误（不影响创建）
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultEffectSettings(),
	}

	// 尝试加载已保存的偏好
	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认偏好
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载偏好
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认偏好
func (sm *SettingsManager) Load() error {
	// 降级模式：无法持久化，使用默认偏好
	if sm.gdataManager == nil {
		sm.settings = DefaultEffectSettings()
		return nil
	}

	// 检查偏好文件是否存在
	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultEffectSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		// 文件存在但加载失败，使用默认偏好
		sm.settings = DefaultEffectSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var loaded EffectSettings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		sm.settings = DefaultEffectSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = &loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存偏好到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前偏好
func (sm *SettingsManager) GetSettings() *EffectSettings {
	return sm.settings
}

// SetEffectsEnabled 设置特效总开关
// 注意：仅修改内存中的偏好，需调用 Save() 方法持久化
func (sm *SettingsManager) SetEffectsEnabled(enabled *bool) {
	sm.settings.EffectsEnabled = enabled
}

// SetReducedMotion 设置减少动效偏好
// 注意：仅修改内存中的偏好，需调用 Save() 方法持久化
func (sm *SettingsManager) SetReducedMotion(enabled bool) {
	sm.settings.ReducedMotion = enabled
}

// SetHideSystemCursor 设置是否隐藏系统光标
// 注意：仅修改内存中的偏好，需调用 Save() 方法持久化
func (sm *SettingsManager) SetHideSystemCursor(enabled bool) {
	sm.settings.HideSystemCursor = enabled
}

// SetShowCursorDot 设置是否显示光标替代图形
// 注意：仅修改内存中的偏好，需调用 Save() 方法持久化
func (sm *SettingsManager) SetShowCursorDot(enabled bool) {
	sm.settings.ShowCursorDot = enabled
}

// SetCursorDotShape 设置光标图形形状（square/circle/crosshair）
// 注意：仅修改内存中的偏好，需调用 Save() 方法持久化
func (sm *SettingsManager) SetCursorDotShape(shape string) {
	sm.settings.CursorDotShape = shape
}

// SetTheme 设置当前特效主题名
// 注意：仅修改内存中的偏好，需调用 Save() 方法持久化
func (sm *SettingsManager) SetTheme(name string) {
	sm.settings.Theme = name
}
