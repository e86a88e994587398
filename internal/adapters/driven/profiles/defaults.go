package profiles

// defaultProfilesContent is written when no profiles file exists yet.
// It matches the built-in profile set, with comments so the file is
// self-explanatory for hand editing.
const defaultProfilesContent = `# Hive Schedule Profiles
# Edit this file to customize your heating schedules
# Changes take effect on the next schedule push (no restart needed)
# Time format: "HH:MM" (24-hour)
# Temperature: Celsius (5.0 - 32.0)

# Standard weekday schedule (Mon-Thur)
workday:
  - time: "05:20"
    temp: 18.5  # Morning warmup
  - time: "07:00"
    temp: 18.0  # Away during day
  - time: "16:30"
    temp: 19.5  # Evening warmup
  - time: "21:45"
    temp: 16.0  # Night setback

# Weekend schedule
weekend:
  - time: "07:30"
    temp: 18.5  # Later morning warmup
  - time: "09:00"
    temp: 18.0  # Comfortable day temperature
  - time: "16:30"
    temp: 19.5  # Evening warmup
  - time: "22:00"
    temp: 16.0  # Later night setback

# Non working weekday, later start
nonworkday:
  - time: "06:30"
    temp: 18.5
  - time: "08:00"
    temp: 18.0
  - time: "16:30"
    temp: 19.5
  - time: "22:00"
    temp: 16.0

# Away/vacation mode (frost protection)
holiday:
  - time: "00:00"
    temp: 15.0

# All day comfort (constant temperature)
all_day_comfort:
  - time: "00:00"
    temp: 19.0

# Custom profile 1 (5 states)
custom1:
  - time: "05:30"
    temp: 17.0
  - time: "08:00"
    temp: 16.5
  - time: "12:00"
    temp: 18.0
  - time: "17:00"
    temp: 19.0
  - time: "22:30"
    temp: 16.0

# Custom profile 2 (5 states)
custom2:
  - time: "06:00"
    temp: 18.0
  - time: "09:00"
    temp: 17.5
  - time: "13:00"
    temp: 18.5
  - time: "18:00"
    temp: 19.5
  - time: "23:00"
    temp: 16.5
`
