package display

import (
	"github.com/chriso345/clifford/v2/internal/common"
	"github.com/chriso345/clifford/v2/model"
)

// BuildHelpWithParent builds help for a subcommand while showing the parent application name
// and the subcommand name together (e.g. "app server [OPTIONS]").
func BuildHelpWithParent(parent any, subName string, subTarget any, long bool) (string, error) {
	parentName, helpMode := "", ""
	if common.IsStructPtr(parent) {
		if ps, err := model.Build(common.GetStructType(parent)); err == nil {
			parentName, helpMode = ps.Name, ps.HelpMode
		}
	}
	if parentName == "" {
		parentName = "<app>"
	}

	spec, err := specOf(subTarget)
	if err != nil {
		return "", err
	}
	return render(spec.Inherit(helpMode), parentName+" "+subName, long), nil
}
