package effects

import (
	"os"

	"github.com/gonewx/cursorfx/pkg/utils"
)

// DetectEnvironment 采集特性检测的三个信号
//
// 精确指针：非移动端构建即认为有鼠标/触控板；
// 触摸能力：移动端构建或当前存在活动触摸；
// 减少动效：持久化的用户偏好，或环境变量 CURSORFX_REDUCED_MOTION=1。
//
// 只在引擎挂载时求值一次，挂载期间不重新判定（重新判定需要完整重挂载）
func DetectEnvironment(reducedMotionPref bool) Environment {
	return Environment{
		FinePointer:   !utils.IsMobile(),
		TouchCapable:  utils.IsMobile() || utils.IsTouchDevice(),
		ReducedMotion: reducedMotionPref || os.Getenv("CURSORFX_REDUCED_MOTION") == "1",
	}
}
