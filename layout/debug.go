package layout

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// debugDump 在布局结果之外附带便于检查的统计信息。
type debugDump struct {
	Boards int `json:"boards"`
	Texts  int `json:"texts"`
	*Result
}

// WriteDebugJSON 将布局结果输出为 JSON，便于调试或可视化。
func WriteDebugJSON(res *Result, path string) error {
	if res == nil {
		return nil
	}
	dump := debugDump{Result: res}
	for _, page := range res.Pages {
		dump.Texts += len(page.Texts)
	}
	dump.Boards = len(res.Pages)
	if res.Geometry.PageHeight > 0 && res.Geometry.PageHeight < PageHeight {
		dump.Boards *= 2
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
