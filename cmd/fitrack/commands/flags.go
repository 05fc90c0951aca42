package commands

import (
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/fitrack/internal/model"
)

// filterFlags are the dashboard list filter flags.
type filterFlags struct {
	activityType string
	status       string
	from         string
	to           string
}

func (f *filterFlags) register(cmd *kingpin.CmdClause) {
	cmd.Flag("type", "Filter by type (Workout, Meal, Steps).").StringVar(&f.activityType)
	cmd.Flag("status", "Filter by status (Planned, InProgress, Completed).").StringVar(&f.status)
	cmd.Flag("from", "Filter from this date, inclusive (YYYY-MM-DD), requires --to.").StringVar(&f.from)
	cmd.Flag("to", "Filter until this date, inclusive (YYYY-MM-DD), requires --from.").StringVar(&f.to)
}

func (f filterFlags) filter() (model.ActivityFilter, error) {
	var filter model.ActivityFilter

	if f.activityType != "" {
		t, err := model.ParseActivityType(f.activityType)
		if err != nil {
			return filter, err
		}
		filter.Type = &t
	}

	if f.status != "" {
		s, err := model.ParseActivityStatus(f.status)
		if err != nil {
			return filter, err
		}
		filter.Status = &s
	}

	if f.from != "" || f.to != "" {
		if f.from == "" || f.to == "" {
			return filter, fmt.Errorf("--from and --to must be used together: %w", model.ErrNotValid)
		}
		start, err := model.ParseDate(f.from)
		if err != nil {
			return filter, err
		}
		end, err := model.ParseDate(f.to)
		if err != nil {
			return filter, err
		}
		filter.DateRange = &model.DateRange{Start: start, End: end}
	}

	return filter, nil
}

// activityFlags are the activity field flags shared by create and edit.
type activityFlags struct {
	file string

	name        string
	description string
	date        string
	status      string
	mealType    string
	duration    int
	calories    int
	steps       int

	nameSet        bool
	descriptionSet bool
	durationSet    bool
	caloriesSet    bool
	stepsSet       bool
}

func (f *activityFlags) register(cmd *kingpin.CmdClause) {
	cmd.Flag("file", "YAML file with the activity, can't be used with the field flags.").Short('f').StringVar(&f.file)
	cmd.Flag("name", "Activity name.").Short('n').IsSetByUser(&f.nameSet).StringVar(&f.name)
	cmd.Flag("description", "Activity description.").IsSetByUser(&f.descriptionSet).StringVar(&f.description)
	cmd.Flag("date", "Activity date (YYYY-MM-DD).").StringVar(&f.date)
	cmd.Flag("status", "Activity status (Planned, InProgress, Completed).").StringVar(&f.status)
	cmd.Flag("duration", "Workout duration in minutes.").IsSetByUser(&f.durationSet).IntVar(&f.duration)
	cmd.Flag("calories", "Workout or meal calories.").IsSetByUser(&f.caloriesSet).IntVar(&f.calories)
	cmd.Flag("steps", "Steps count.").IsSetByUser(&f.stepsSet).IntVar(&f.steps)
	cmd.Flag("meal-type", "Meal type (Breakfast, Lunch, Dinner, Snack).").StringVar(&f.mealType)
}

func (f activityFlags) anyFieldSet() bool {
	return f.nameSet || f.descriptionSet || f.date != "" || f.status != "" || f.mealType != "" ||
		f.durationSet || f.caloriesSet || f.stepsSet
}

// patch returns the changes set by the flags.
func (f activityFlags) patch() (model.ActivityPatch, error) {
	var p model.ActivityPatch

	if f.nameSet {
		p.Name = &f.name
	}
	if f.descriptionSet {
		p.Description = &f.description
	}
	if f.date != "" {
		d, err := model.ParseDate(f.date)
		if err != nil {
			return p, err
		}
		p.Date = &d
	}
	if f.status != "" {
		s, err := model.ParseActivityStatus(f.status)
		if err != nil {
			return p, err
		}
		p.Status = &s
	}
	if f.mealType != "" {
		mt, err := model.ParseMealType(f.mealType)
		if err != nil {
			return p, err
		}
		p.MealType = &mt
	}
	if f.durationSet {
		p.DurationMinutes = &f.duration
	}
	if f.caloriesSet {
		p.Calories = &f.calories
	}
	if f.stepsSet {
		p.StepsCount = &f.steps
	}

	return p, nil
}

// activity returns a new activity of the type with the fields set by the flags.
func (f activityFlags) activity(t model.ActivityType) (model.Activity, error) {
	p, err := f.patch()
	if err != nil {
		return model.Activity{}, err
	}
	return p.Apply(model.Activity{Type: t})
}
