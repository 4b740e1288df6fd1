package tasklist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkc/tasklist-checker/internal/domain"
	"github.com/tkc/tasklist-checker/internal/tasklist"
)

func TestRender(t *testing.T) {
	tests := map[string]struct {
		tasks domain.TaskSet
		exp   string
	}{
		"No tasks should render nothing.": {
			tasks: domain.NewTaskSet(),
			exp:   "",
		},
		"Only completed tasks should omit the uncompleted section.": {
			tasks: domain.TaskSet{Completed: []string{"A", "B"}},
			exp:   "## :white_check_mark: Completed Tasks\n- [x] A\n- [x] B\n",
		},
		"Only uncompleted tasks should omit the completed section.": {
			tasks: domain.TaskSet{Uncompleted: []string{"A"}},
			exp:   "## :x: Uncompleted Tasks\n- [ ] A\n",
		},
		"Both sections should be rendered in order.": {
			tasks: domain.TaskSet{Completed: []string{"A"}, Uncompleted: []string{"B"}},
			exp:   "## :white_check_mark: Completed Tasks\n- [x] A\n## :x: Uncompleted Tasks\n- [ ] B\n",
		},
		"Labels should be emitted verbatim.": {
			tasks: domain.TaskSet{Uncompleted: []string{"**bold** [link]()"}},
			exp:   "## :x: Uncompleted Tasks\n- [ ] **bold** [link]()\n",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.exp, tasklist.Render(test.tasks))
		})
	}
}

func TestExtractAndRender(t *testing.T) {
	tests := map[string]struct {
		text          string
		exp           string
		expIsComplete bool
	}{
		"A simple body should render both sections.": {
			text:          "- [x] A\n- [ ] B",
			exp:           "## :white_check_mark: Completed Tasks\n- [x] A\n## :x: Uncompleted Tasks\n- [ ] B\n",
			expIsComplete: false,
		},
		"A list of completed tasks.": {
			text: `## Issue Type


## Checklist
- [x] I have read the [CONTRIBUTING.md]()
* [x] I have made corresponding changes to the **documentation**
* Not a task list item
- [x] My changes generate no _lint_ errors
  - [x] I have added tests that prove my fix is effective or that my feature works
  - Another not a task list item
  - [x] New and existing unit tests pass locally with my changes`,
			exp: `## :white_check_mark: Completed Tasks
- [x] I have read the [CONTRIBUTING.md]()
- [x] I have made corresponding changes to the **documentation**
- [x] My changes generate no _lint_ errors
- [x] I have added tests that prove my fix is effective or that my feature works
- [x] New and existing unit tests pass locally with my changes
`,
			expIsComplete: true,
		},
		"A list of completed and uncompleted tasks.": {
			text: "## Issue Type\n\n\n## Checklist\n" +
				"- [x] I have read the [CONTRIBUTING.md]()\n" +
				"- [ ] I have made corresponding changes to the documentation\n" +
				"* [ ] \n" +
				"* [x]\n" +
				"- [X] My changes generate no lint errors\n" +
				"- [ ] I have added tests that prove my fix is effective or that my feature works\n" +
				"- [x] New and existing unit tests pass locally with my changes",
			exp: `## :white_check_mark: Completed Tasks
- [x] I have read the [CONTRIBUTING.md]()
- [x] My changes generate no lint errors
- [x] New and existing unit tests pass locally with my changes
## :x: Uncompleted Tasks
- [ ] I have made corresponding changes to the documentation
- [ ] I have added tests that prove my fix is effective or that my feature works
`,
			expIsComplete: false,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			tasks, err := newExtractor(t).Tasks(test.text)
			require.NoError(err)

			assert.Equal(test.exp, tasklist.Render(tasks))
			assert.Equal(test.expIsComplete, tasks.IsComplete())
		})
	}
}
